package logger

// Field keys shared by every component.
const (
	FieldComponent = "component"
	FieldTask      = "task_id"
	FieldDelay     = "delay_ms"
	FieldDeadline  = "deadline_ms"
	FieldPending   = "pending"
	FieldCommand   = "command"
	FieldValue     = "value"
)
