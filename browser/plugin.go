package browser

// PluginMimeType is one MIME type association advertised by a plugin.
type PluginMimeType struct {
	Type          string
	Description   string
	FileExtension string
}

// Plugin describes one navigator plugin as reported to scripts. Only
// Internet Explorer and old Firefox expose anything here.
type Plugin struct {
	Name        string
	Description string
	Version     string
	Filename    string
	MimeTypes   []PluginMimeType
}

// Clone returns an independent deep copy of the plugin.
func (p Plugin) Clone() Plugin {
	c := p
	c.MimeTypes = make([]PluginMimeType, len(p.MimeTypes))
	copy(c.MimeTypes, p.MimeTypes)
	return c
}

func clonePlugins(plugins []Plugin) []Plugin {
	if plugins == nil {
		return nil
	}
	out := make([]Plugin, len(plugins))
	for i, p := range plugins {
		out[i] = p.Clone()
	}
	return out
}
