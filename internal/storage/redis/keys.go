package redis

// Key prefix for all console state
const keyPrefix = "smartcare"

// adminsKey is the key holding the JSON-encoded credential collection
func adminsKey() string {
	return keyPrefix + ":admins"
}

// sessionKey is the key holding the JSON-encoded current session
func sessionKey() string {
	return keyPrefix + ":session"
}
