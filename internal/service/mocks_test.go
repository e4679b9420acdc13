package service

import (
	"context"

	"github.com/factum-app/factum/internal/domain"
	"github.com/factum-app/factum/internal/generation"
	"github.com/factum-app/factum/internal/platform/supabase"
	"github.com/factum-app/factum/internal/store"
)

// In-memory store fakes. They honor the store interface contracts close
// enough for service tests: nil for missing singletons, ErrNotFound for
// missing dated records, keyed replacement on upsert.

type memUserStore struct {
	user    *domain.User
	getErr  error
	saveErr error
}

func (m *memUserStore) Get(_ context.Context) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.user == nil {
		return nil, nil
	}
	u := *m.user
	return &u, nil
}

func (m *memUserStore) Save(_ context.Context, user *domain.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	u := *user
	m.user = &u
	return nil
}

type memQuizStore struct {
	records []domain.DailyQuizRecord
}

func (m *memQuizStore) List(_ context.Context) ([]domain.DailyQuizRecord, error) {
	return append([]domain.DailyQuizRecord(nil), m.records...), nil
}

func (m *memQuizStore) GetByDate(_ context.Context, date string) (*domain.DailyQuizRecord, error) {
	for _, rec := range m.records {
		if rec.Date == date {
			r := rec
			return &r, nil
		}
	}
	return nil, store.NewStoreError("daily_quiz", "get_by_date", store.ErrNotFound)
}

func (m *memQuizStore) Upsert(_ context.Context, record *domain.DailyQuizRecord) error {
	for i, rec := range m.records {
		if rec.Date == record.Date {
			m.records[i] = *record
			return nil
		}
	}
	m.records = append(m.records, *record)
	return nil
}

type memChatStore struct {
	messages  []domain.ChatMessage
	appendErr error
}

func (m *memChatStore) List(_ context.Context) ([]domain.ChatMessage, error) {
	return append([]domain.ChatMessage(nil), m.messages...), nil
}

func (m *memChatStore) Append(_ context.Context, message *domain.ChatMessage) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.messages = append(m.messages, *message)
	return nil
}

type memSleepStore struct {
	plan *domain.SleepPlan
}

func (m *memSleepStore) Get(_ context.Context) (*domain.SleepPlan, error) {
	if m.plan == nil {
		return nil, nil
	}
	p := *m.plan
	return &p, nil
}

func (m *memSleepStore) Save(_ context.Context, plan *domain.SleepPlan) error {
	p := *plan
	m.plan = &p
	return nil
}

type memJourneyStore struct {
	state domain.JourneyState
}

func (m *memJourneyStore) Get(_ context.Context) (*domain.JourneyState, error) {
	s := m.state
	s.Entries = append([]domain.JourneyEntry(nil), m.state.Entries...)
	return &s, nil
}

func (m *memJourneyStore) Save(_ context.Context, state *domain.JourneyState) error {
	m.state = *state
	return nil
}

// memStore aggregates the fakes into a store.Store.
type memStore struct {
	users   memUserStore
	quizzes memQuizStore
	chat    memChatStore
	sleep   memSleepStore
	journey memJourneyStore
	cleared bool
}

func (m *memStore) Users() store.UserStore             { return &m.users }
func (m *memStore) DailyQuizzes() store.DailyQuizStore { return &m.quizzes }
func (m *memStore) Chat() store.ChatStore              { return &m.chat }
func (m *memStore) Sleep() store.SleepStore            { return &m.sleep }
func (m *memStore) Journey() store.JourneyStore        { return &m.journey }

func (m *memStore) ClearAll(_ context.Context) error {
	m.users = memUserStore{}
	m.quizzes = memQuizStore{}
	m.chat = memChatStore{}
	m.sleep = memSleepStore{}
	m.journey = memJourneyStore{}
	m.cleared = true
	return nil
}

// stubProvider is an IdentityProvider returning canned sessions.
type stubProvider struct {
	session    *supabase.Session
	err        error
	signedOut  bool
	lastEmail  string
	lastSecret string
}

func (p *stubProvider) SignUp(_ context.Context, email, password string, _ map[string]interface{}) (*supabase.Session, error) {
	p.lastEmail, p.lastSecret = email, password
	return p.session, p.err
}

func (p *stubProvider) SignIn(_ context.Context, email, password string) (*supabase.Session, error) {
	p.lastEmail, p.lastSecret = email, password
	return p.session, p.err
}

func (p *stubProvider) SignOut(_ context.Context, _ string) error {
	p.signedOut = true
	return nil
}

// stubResponder is a generation.Responder with a fixed reply or error.
type stubResponder struct {
	reply   string
	err     error
	lastReq generation.ReplyRequest
	calls   int
}

func (r *stubResponder) GenerateReply(_ context.Context, req generation.ReplyRequest) (string, error) {
	r.calls++
	r.lastReq = req
	if r.err != nil {
		return "", r.err
	}
	return r.reply, nil
}
