package utils

import (
	"log"
	"strings"
)

// LogEvent prints one line per domain event, tagged with the module that
// emitted it (trips, payments, docs, http) and the request it belongs to.
// Keep the message a short summary; amounts and ids are fine, payloads and
// notes are not.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(strings.TrimSpace(module)), action, strings.TrimSpace(requestID), message)
}
