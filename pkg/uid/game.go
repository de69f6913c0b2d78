package uid

import "github.com/google/uuid"

// GenerateGameID returns a fresh id for every engine instance, so clients can
// tell a restarted game from the one they were showing.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateConnectionID identifies one websocket connection.
func GenerateConnectionID() string {
	return "conn_" + uuid.NewString()
}
