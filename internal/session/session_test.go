package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"daily-report-bot/internal/model"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore(10, time.Hour)

	assert.Equal(t, StateNone, store.Get(1).State)

	store.Set(1, Conversation{State: StateFirstName, Registration: Registration{Language: model.LanguageAZ}})
	conv := store.Transition(1, StateLastName)
	assert.Equal(t, StateLastName, conv.State)
	assert.Equal(t, model.LanguageAZ, store.Get(1).Registration.Language)
	assert.Equal(t, 1, store.Len())

	store.Clear(1)
	assert.Equal(t, StateNone, store.Get(1).State)
	assert.Equal(t, 0, store.Len())
}

func TestSettingNoneRemoves(t *testing.T) {
	store := NewStore(10, time.Hour)
	store.Set(7, Conversation{State: StateReportText})
	store.Set(7, Conversation{State: StateNone})
	assert.Equal(t, 0, store.Len())
}

func TestEntriesExpire(t *testing.T) {
	store := NewStore(10, 20*time.Millisecond)
	store.Set(1, Conversation{State: StateReportTypeSelect})

	assert.Eventually(t, func() bool {
		return store.Get(1).State == StateNone
	}, time.Second, 10*time.Millisecond)
}

func TestStateGroups(t *testing.T) {
	assert.True(t, StateConfirm.Registering())
	assert.False(t, StateReportText.Registering())
	assert.True(t, StateReportText.Reporting())
	assert.True(t, StateEditLanguage.Editing())
	assert.False(t, StateNone.Editing())
	assert.Equal(t, "work_time_select", StateWorkTimeSelect.String())
}
