package messages

// JoinRequest is sent by a client right after connecting. PlayerID tags
// every entity the server creates for this player.
type JoinRequest struct {
	Version    string
	PlayerID   string
	PlayerName string
	Language   string // BCP 47 tag, e.g. "pt-BR"
}
