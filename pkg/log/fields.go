package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Domain
	FieldRoomKey   = "room_key"
	FieldMessageID = "message_id"
	FieldMatchID   = "match_id"
	FieldUserID    = "user_id"

	// Service
	FieldService = "service"
)
