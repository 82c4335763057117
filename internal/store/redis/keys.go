package redis

const (
	// KeyConnectionConfig holds the persisted remote store settings
	// (JSON: endpoint + access key).
	KeyConnectionConfig = "villapro:settings:connection"
	// KeySnapshot holds the last known catalog snapshot (JSON array),
	// used only to warm the in-memory catalog on startup.
	KeySnapshot = "villapro:catalog:snapshot"
	// KeySession holds restorable session material (email + refresh
	// token). Secret-bearing: values under this key are never logged.
	KeySession = "villapro:auth:session"
)
