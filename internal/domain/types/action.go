package types

const (
	ActionDatabaseQueryFailed   = "database_query_failed"
	ActionExternalServiceFailed = "external_service_failed"
	ActionDecodePayloadFailed   = "decode_payload_failed"
	ActionRenderFailed          = "render_failed"
)
