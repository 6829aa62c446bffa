package model

import "strings"

type RoomCode string

const EmptyRoomCode RoomCode = ""

// Codes are shared verbally, so input is matched case-insensitively.
func NormalizeRoomCode(raw string) RoomCode {
	return RoomCode(strings.ToUpper(strings.TrimSpace(raw)))
}
