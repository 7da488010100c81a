package service

import (
	"sync"

	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/model"
)

// ModeRouter remembers which transformation each chat has picked from the
// menu. The mode is sticky: it survives successful and failed attempts and
// only changes on another menu pick or /start.
type ModeRouter struct {
	mu    sync.RWMutex
	modes map[int64]model.Mode
}

func NewModeRouter() *ModeRouter {
	return &ModeRouter{modes: map[int64]model.Mode{}}
}

// Set overwrites the chat's mode.
func (r *ModeRouter) Set(chatID int64, mode model.Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modes[chatID] = mode
}

// Reset puts the chat back into the unset mode.
func (r *ModeRouter) Reset(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.modes, chatID)
}

// Get returns the chat's mode; chats never seen are unset.
func (r *ModeRouter) Get(chatID int64) model.Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.modes[chatID]
}
