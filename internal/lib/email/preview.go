package email

// PreviewData is sample template data, keyed by template, for rendering
// templates locally.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"NickName": "코어",
	},
}
