// Package session keeps per-user conversation state between updates.
package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"daily-report-bot/internal/model"
)

const DefaultSize = 1000

// State is the step a user is at in a multi-message flow.
type State int

const (
	StateNone State = iota
	StateLanguageSelect
	StateFirstName
	StateLastName
	StateWorkTimeSelect
	StateConfirm
	StateReportTypeSelect
	StateReportText
	StateEditFirstName
	StateEditLastName
	StateEditWorkTime
	StateEditLanguage
)

var stateNames = map[State]string{
	StateNone:             "none",
	StateLanguageSelect:   "language_select",
	StateFirstName:        "first_name",
	StateLastName:         "last_name",
	StateWorkTimeSelect:   "work_time_select",
	StateConfirm:          "confirm",
	StateReportTypeSelect: "report_type_select",
	StateReportText:       "report_text",
	StateEditFirstName:    "edit_first_name",
	StateEditLastName:     "edit_last_name",
	StateEditWorkTime:     "edit_work_time",
	StateEditLanguage:     "edit_language",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Registering is true for the steps before the user row exists.
func (s State) Registering() bool {
	return s >= StateLanguageSelect && s <= StateConfirm
}

// Reporting is true while a daily report is being composed.
func (s State) Reporting() bool {
	return s == StateReportTypeSelect || s == StateReportText
}

// Editing is true while a single profile field is being changed.
func (s State) Editing() bool {
	return s >= StateEditFirstName && s <= StateEditLanguage
}

// Registration is the scratch space of the registration flow.
type Registration struct {
	Language  model.Language
	FirstName string
	LastName  string
	WorkTime  model.WorkTime
}

// Conversation is the state of one user.
type Conversation struct {
	State        State
	Registration Registration
}

// Store is a size-bounded conversation map whose entries expire after ttl.
type Store struct {
	cache *expirable.LRU[int64, Conversation]
}

func NewStore(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultSize
	}
	return &Store{cache: expirable.NewLRU[int64, Conversation](size, nil, ttl)}
}

// Get returns the user's conversation; absent users are in StateNone.
func (s *Store) Get(userID int64) Conversation {
	conv, ok := s.cache.Get(userID)
	if !ok {
		return Conversation{State: StateNone}
	}
	return conv
}

func (s *Store) Set(userID int64, conv Conversation) {
	if conv.State == StateNone {
		s.cache.Remove(userID)
		return
	}
	s.cache.Add(userID, conv)
}

// Transition moves the user to state keeping the scratch data.
func (s *Store) Transition(userID int64, state State) Conversation {
	conv := s.Get(userID)
	conv.State = state
	s.Set(userID, conv)
	return conv
}

func (s *Store) Clear(userID int64) {
	s.cache.Remove(userID)
}

func (s *Store) Len() int {
	return s.cache.Len()
}
