package handlers

const (
	// Source recorded with generation history
	sourceAPI = "api"
)
