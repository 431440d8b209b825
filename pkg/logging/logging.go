package logging

// Structured log field names shared by all components.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldType      = "type"
	FieldPort      = "port"
	FieldSignal    = "signal"
	FieldEndpoint  = "endpoint"
	FieldID        = "recommendation_id"
)
