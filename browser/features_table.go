package browser

// Behavioral feature flags. Each flag names one observable difference
// between browsers; the table below records which browsers exhibit it.
// The scripting host layer and the layout layer branch on these through
// BrowserVersion.HasFeature.
const (
	// CSS
	FeatureCSSBackgroundInitial       Feature = "CSS_BACKGROUND_INITIAL"
	FeatureCSSColorHashExpanded       Feature = "CSS_COLOR_HASH_EXPANDED"
	FeatureCSSDisplayRubyDefault      Feature = "CSS_DISPLAY_RUBY_DEFAULT"
	FeatureCSSFontSizeZoomPercent     Feature = "CSS_FONT_SIZE_ZOOM_PERCENT"
	FeatureCSSOutlineWidthUnit        Feature = "CSS_OUTLINE_WIDTH_UNIT"
	FeatureCSSPseudoSelectorMsFirst   Feature = "CSS_PSEUDO_SELECTOR_MS_FIRST"
	FeatureCSSVerticalAlignSupportsIE Feature = "CSS_VERTICAL_ALIGN_SUPPORTS_IE"
	FeatureCSSZIndexTypeInteger       Feature = "CSS_ZINDEX_TYPE_INTEGER"

	// DOM / HTML
	FeatureHTMLAttributeLowerCase     Feature = "HTML_ATTRIBUTE_LOWER_CASE"
	FeatureHTMLBaseInBody             Feature = "HTML_BASE_IN_BODY"
	FeatureHTMLCommandTag             Feature = "HTML_COMMAND_TAG"
	FeatureHTMLDialogTag              Feature = "HTML_DIALOG_TAG"
	FeatureHTMLDocumentCharsetLower   Feature = "HTMLDOCUMENT_CHARSET_LOWERCASE"
	FeatureHTMLDocumentColor          Feature = "HTMLDOCUMENT_COLOR"
	FeatureHTMLImageInvisibleNoSrc    Feature = "HTMLIMAGE_INVISIBLE_NO_SRC"
	FeatureHTMLInputDateSupported     Feature = "HTMLINPUT_TYPE_DATETIME_SUPPORTED"
	FeatureHTMLOptionEmptyTextIsValue Feature = "HTMLOPTION_EMPTY_TEXT_IS_NO_VALUE"
	FeatureHTMLProgressTag            Feature = "HTML_PROGRESS_TAG"

	// Events
	FeatureEventBeforeUnloadReturn   Feature = "EVENT_BEFORE_UNLOAD_RETURN_VALUE"
	FeatureEventFocusInBlurOut       Feature = "EVENT_FOCUS_IN_BLUR_OUT"
	FeatureEventOnClickPointerEvent  Feature = "EVENT_ONCLICK_USES_POINTEREVENT"
	FeatureEventOnMessageDataNull    Feature = "EVENT_ONMESSAGE_DEFAULT_DATA_NULL"
	FeatureEventScrollUppercaseTypes Feature = "EVENT_SCROLL_UPPERCASE_TYPE"
	FeatureEventWindowExecute        Feature = "WINDOW_EXECUTE_EVENTS"

	// JavaScript host objects
	FeatureJSArrayFrom              Feature = "JS_ARRAY_FROM"
	FeatureJSDeferredExecution      Feature = "JS_DEFERRED_EXECUTION"
	FeatureJSDocumentSelectionRange Feature = "JS_DOCUMENT_SELECTION_RANGE_COUNT"
	FeatureJSDOMTokenListEnhanced   Feature = "JS_DOM_TOKEN_LIST_ENHANCED"
	FeatureJSIntlV2                 Feature = "JS_INTL_V2"
	FeatureJSNavigatorDoNotTrack    Feature = "JS_NAVIGATOR_DO_NOT_TRACK"
	FeatureJSStringIncludes         Feature = "JS_STRING_INCLUDES"
	FeatureJSSymbol                 Feature = "JS_SYMBOL"
	FeatureJSWeakSet                Feature = "JS_WEAK_SET"
	FeatureJSWindowActiveXObject    Feature = "JS_WINDOW_ACTIVEXOBJECT"

	// Networking-visible behavior
	FeatureHTTPCookieRootDomainDots Feature = "HTTP_COOKIE_REMOVE_DOT_FROM_ROOT_DOMAINS"
	FeatureHTTPHeaderUpgradeRequest Feature = "HTTP_HEADER_UPGRADE_INSECURE_REQUEST"
	FeatureHTTPRedirect308          Feature = "HTTP_REDIRECT_308"

	// XMLHttpRequest
	FeatureXHRHeadersSeparateByLF  Feature = "XHR_ALL_RESPONSE_HEADERS_SEPARATE_BY_LF"
	FeatureXHRIgnoreSameOriginTo   Feature = "XHR_IGNORE_SAME_ORIGIN_TO_ABOUT"
	FeatureXHRNoCrossOriginToAbout Feature = "XHR_NO_CROSS_ORIGIN_TO_ABOUT"
	FeatureXHRWithCredentialsTrue  Feature = "XHR_WITHCREDENTIALS_ALLOW_ORIGIN_ALL"

	// Firefox ESR divergences
	FeatureJSClipboardReadText    Feature = "JS_CLIPBOARD_READ_TEXT"
	FeatureCSSImageSetSupported   Feature = "CSS_IMAGE_SET_SUPPORTED"
	FeatureHTMLLazyLoadingImages  Feature = "HTML_LAZY_LOADING_IMAGES"
	FeatureJSMediaSessionApi      Feature = "JS_MEDIA_SESSION_API"
	FeatureXHRFetchKeepaliveFlag  Feature = "XHR_FETCH_KEEPALIVE_FLAG"
	FeatureCSSGapNormalizesLength Feature = "CSS_GAP_NORMALIZES_LENGTH"
)

// Compat shorthands for the table below.
var (
	chromeAny  = Compat{Family: FamilyChrome}
	firefoxAny = Compat{Family: FamilyFirefox}
	firefox60  = Compat{Family: FamilyFirefox, Version: 60}
	firefox68  = Compat{Family: FamilyFirefox, Version: 68}
	firefox74  = Compat{Family: FamilyFirefox, Version: 74}
	ieAny      = Compat{Family: FamilyInternetExplorer}
)

// featureTable is the closed compatibility catalog: for each feature, the
// browsers it is active in. Fixed at build time; validated during package
// init. Keep entries sorted within their group.
var featureTable = map[Feature][]Compat{
	// CSS
	FeatureCSSBackgroundInitial:       {chromeAny},
	FeatureCSSColorHashExpanded:       {ieAny},
	FeatureCSSDisplayRubyDefault:      {chromeAny, firefoxAny},
	FeatureCSSFontSizeZoomPercent:     {chromeAny, firefoxAny},
	FeatureCSSOutlineWidthUnit:        {ieAny},
	FeatureCSSPseudoSelectorMsFirst:   {ieAny},
	FeatureCSSVerticalAlignSupportsIE: {ieAny},
	FeatureCSSZIndexTypeInteger:       {ieAny},

	// DOM / HTML
	FeatureHTMLAttributeLowerCase:     {chromeAny, firefoxAny},
	FeatureHTMLBaseInBody:             {chromeAny},
	FeatureHTMLCommandTag:             {firefox60, firefox68},
	FeatureHTMLDialogTag:              {chromeAny},
	FeatureHTMLDocumentCharsetLower:   {chromeAny, firefoxAny},
	FeatureHTMLDocumentColor:          {ieAny},
	FeatureHTMLImageInvisibleNoSrc:    {chromeAny, firefoxAny},
	FeatureHTMLInputDateSupported:     {chromeAny},
	FeatureHTMLOptionEmptyTextIsValue: {firefoxAny},
	FeatureHTMLProgressTag:            {chromeAny, firefoxAny},

	// Events
	FeatureEventBeforeUnloadReturn:   {chromeAny, ieAny},
	FeatureEventFocusInBlurOut:       {ieAny},
	FeatureEventOnClickPointerEvent:  {chromeAny},
	FeatureEventOnMessageDataNull:    {firefoxAny},
	FeatureEventScrollUppercaseTypes: {ieAny},
	FeatureEventWindowExecute:        {ieAny},

	// JavaScript host objects
	FeatureJSArrayFrom:              {chromeAny, firefoxAny},
	FeatureJSDeferredExecution:      {chromeAny, firefoxAny, ieAny},
	FeatureJSDocumentSelectionRange: {ieAny},
	FeatureJSDOMTokenListEnhanced:   {chromeAny, firefoxAny},
	FeatureJSIntlV2:                 {chromeAny},
	FeatureJSNavigatorDoNotTrack:    {firefoxAny},
	FeatureJSStringIncludes:         {chromeAny, firefoxAny},
	FeatureJSSymbol:                 {chromeAny, firefoxAny},
	FeatureJSWeakSet:                {chromeAny, firefoxAny},
	FeatureJSWindowActiveXObject:    {ieAny},

	// Networking-visible behavior
	FeatureHTTPCookieRootDomainDots: {ieAny},
	FeatureHTTPHeaderUpgradeRequest: {chromeAny},
	FeatureHTTPRedirect308:          {chromeAny, firefoxAny},

	// XMLHttpRequest
	FeatureXHRHeadersSeparateByLF:  {chromeAny, firefoxAny},
	FeatureXHRIgnoreSameOriginTo:   {firefoxAny},
	FeatureXHRNoCrossOriginToAbout: {ieAny},
	FeatureXHRWithCredentialsTrue:  {chromeAny, firefoxAny},

	// Rolling Firefox gained these after the 68 ESR branch; the ESR
	// releases are pinned by exact version, so they stay off there.
	FeatureJSClipboardReadText:    {chromeAny, firefox74},
	FeatureCSSImageSetSupported:   {chromeAny, firefox74},
	FeatureHTMLLazyLoadingImages:  {chromeAny, firefox74},
	FeatureJSMediaSessionApi:      {chromeAny, firefox74},
	FeatureXHRFetchKeepaliveFlag:  {chromeAny},
	FeatureCSSGapNormalizesLength: {firefox68, firefox74},
}
