// Package exercise estimates calories burned from free-text exercise
// descriptions through an [ai.Provider], with the same tolerant response
// handling as package food: unrecoverable model output yields a result whose
// Error field is set, never a JSON error.
package exercise
