// Package simulator models the CSRF demo: a bank session, an optional CSRF
// token and the decision whether a transfer from the bank's own page or
// from an attacker's page goes through.
//
// All four operations run under a single lock, so the observable state
// always satisfies: a token exists iff the session is logged in under
// protected mode, and the log is empty while logged out.
package simulator

import (
	"csrfdemo/models"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultInitialBalance is the balance every fresh session starts with
const DefaultInitialBalance int64 = 1000

type options struct {
	mode           models.Mode
	newToken       func() string
	now            func() time.Time
	initialBalance int64
	logger         *zap.SugaredLogger
}

type Option func(*options)

func WithMode(mode models.Mode) Option {
	return func(o *options) { o.mode = mode }
}

// WithTokenGenerator replaces the login token source
func WithTokenGenerator(fn func() string) Option {
	return func(o *options) { o.newToken = fn }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithInitialBalance(balance int64) Option {
	return func(o *options) { o.initialBalance = balance }
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = logger }
}

// Simulator is the single owner of session, mode and log state
type Simulator struct {
	mu       sync.Mutex
	modes    *ModeSelector
	sessions *SessionManager
	log      *Recorder
	logger   *zap.SugaredLogger

	// latest is the last committed snapshot, readable without mu
	stateMu sync.RWMutex
	latest  models.State

	// notifyMu keeps subscriber callbacks in operation order
	notifyMu sync.Mutex
	subMu    sync.Mutex
	subs     map[int]func(models.State)
	nextSub  int
}

func New(opts ...Option) *Simulator {
	o := options{
		mode:           models.ModeVulnerable,
		initialBalance: DefaultInitialBalance,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.initialBalance <= 0 {
		o.initialBalance = DefaultInitialBalance
	}
	if o.logger == nil {
		o.logger = zap.NewNop().Sugar()
	}

	rec := NewRecorder(o.now)
	s := &Simulator{
		modes:    NewModeSelector(o.mode),
		sessions: NewSessionManager(o.initialBalance, o.newToken, rec),
		log:      rec,
		logger:   o.logger,
		subs:     make(map[int]func(models.State)),
	}
	s.latest = s.snapshot()
	return s
}

// Login opens a session under the current mode and returns the state it
// produced.
func (s *Simulator) Login() models.State {
	s.mu.Lock()
	mode := s.modes.Mode()
	s.sessions.Login(mode)
	s.logger.Debugw("login", "mode", mode, "token_issued", s.sessions.Session().HasToken())
	return s.commit()
}

// Logout resets the session. Calling it repeatedly is harmless.
func (s *Simulator) Logout() {
	s.mu.Lock()
	s.sessions.Logout()
	s.logger.Debugw("logout")
	s.commit()
}

// SetMode switches the simulation mode. A real switch logs the session out
// in the same critical section so no token outlives the mode it was issued
// under. Selecting the active mode is a no-op.
func (s *Simulator) SetMode(mode models.Mode) error {
	_, _, err := s.SwitchMode(mode)
	return err
}

// SwitchMode is SetMode that also reports the resulting state and whether
// the mode actually changed.
func (s *Simulator) SwitchMode(mode models.Mode) (models.State, bool, error) {
	s.mu.Lock()
	changed, err := s.modes.Select(mode)
	if err != nil {
		s.mu.Unlock()
		return models.State{}, false, precondition("set mode", err)
	}
	if !changed {
		state := s.snapshot()
		s.mu.Unlock()
		return state, false, nil
	}
	s.sessions.Logout()
	s.logger.Debugw("mode switched", "mode", mode)
	return s.commit(), true, nil
}

// SimulateTransfer narrates a transfer of amount sent from origin and debits
// the balance when the simulated bank accepts it. Precondition failures
// leave state and log untouched.
func (s *Simulator) SimulateTransfer(origin models.Origin, amount int64) (models.TransferResult, error) {
	const op = "simulate transfer"
	if !origin.Valid() {
		return models.TransferResult{}, precondition(op, ErrUnknownOrigin)
	}
	if amount <= 0 {
		return models.TransferResult{}, precondition(op, ErrInvalidAmount)
	}

	s.mu.Lock()
	sess := s.sessions.Session()
	if !sess.LoggedIn {
		s.mu.Unlock()
		return models.TransferResult{}, precondition(op, ErrNotLoggedIn)
	}

	mode := s.modes.Mode()
	decision := Decide(mode, origin, sess.CSRFToken, amount)
	if decision.Allowed && amount > sess.Balance {
		s.mu.Unlock()
		return models.TransferResult{}, precondition(op, ErrInsufficientFunds)
	}

	entries := make([]models.LogEntry, 0, len(decision.Steps))
	for _, step := range decision.Steps {
		entries = append(entries, s.log.Append(step.Message, step.Severity))
	}
	if decision.Allowed {
		s.sessions.debit(amount)
	}

	result := models.TransferResult{
		Mode:    mode,
		Origin:  origin,
		Amount:  amount,
		Allowed: decision.Allowed,
		Balance: s.sessions.Session().Balance,
		Entries: entries,
	}
	s.logger.Debugw("transfer simulated",
		"mode", mode, "origin", origin, "amount", amount,
		"allowed", result.Allowed, "balance", result.Balance)
	s.commit()
	return result, nil
}

// State returns the last committed snapshot. It never waits on a running
// operation or its subscribers.
func (s *Simulator) State() models.State {
	s.stateMu.RLock()
	state := s.latest
	s.stateMu.RUnlock()
	state.Log = slices.Clone(state.Log)
	return state
}

// Subscribe registers fn to receive a snapshot after every state change.
// Callbacks run synchronously in operation order. They may call State but
// must not call the mutating operations, and they should hand slow work
// off rather than block. The returned func removes the subscription.
func (s *Simulator) Subscribe(fn func(models.State)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Simulator) snapshot() models.State {
	sess := s.sessions.Session()
	return models.State{
		LoggedIn:  sess.LoggedIn,
		Balance:   sess.Balance,
		Mode:      s.modes.Mode(),
		CSRFToken: sess.CSRFToken,
		Log:       s.log.Entries(),
	}
}

// commit is called with s.mu held and releases it after handing the new
// snapshot over to the notifier.
func (s *Simulator) commit() models.State {
	state := s.snapshot()
	s.stateMu.Lock()
	s.latest = state
	s.latest.Log = slices.Clone(state.Log)
	s.stateMu.Unlock()

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	fns := make([]func(models.State), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
	return state
}
