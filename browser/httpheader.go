package browser

// Standard HTTP header names used in the per-browser ordered header lists.
// Casing matches what the browsers put on the wire.
const (
	HeaderHost                    = "Host"
	HeaderUserAgent               = "User-Agent"
	HeaderAccept                  = "Accept"
	HeaderAcceptLanguage          = "Accept-Language"
	HeaderAcceptEncoding          = "Accept-Encoding"
	HeaderReferer                 = "Referer"
	HeaderCookie                  = "Cookie"
	HeaderConnection              = "Connection"
	HeaderDNT                     = "DNT"
	HeaderUpgradeInsecureRequests = "Upgrade-Insecure-Requests"
	HeaderSecFetchDest            = "Sec-Fetch-Dest"
	HeaderSecFetchMode            = "Sec-Fetch-Mode"
	HeaderSecFetchSite            = "Sec-Fetch-Site"
	HeaderSecFetchUser            = "Sec-Fetch-User"
)
