package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/dmitrijs2005/doorbell/internal/client/netmon"
	"github.com/dmitrijs2005/doorbell/internal/client/store"
	"github.com/dmitrijs2005/doorbell/internal/client/token"
	"github.com/dmitrijs2005/doorbell/internal/logging"
	"github.com/dmitrijs2005/doorbell/internal/observable"
	"github.com/dmitrijs2005/doorbell/internal/scope"
)

// DefaultReadyDelay is the pause before READY is published.
const DefaultReadyDelay = 100 * time.Millisecond

// State is a step of the start-up sequence.
type State string

const (
	StateInit                  State = "INIT"
	StateCheckingNetwork       State = "CHECKING_NETWORK"
	StateNoStoredCredentials   State = "NO_STORED_CREDENTIALS"
	StateAttemptingSilentLogin State = "ATTEMPTING_SILENT_LOGIN"
	StateLoginFailed           State = "LOGIN_FAILED"
	StateLoginOKVerified       State = "LOGIN_OK_VERIFIED"
	StateLoginOKUnverified     State = "LOGIN_OK_UNVERIFIED"
	StateReady                 State = "READY"
)

// Authenticator is the part of the auth API the bootstrap needs.
type Authenticator interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	SendOTP(ctx context.Context, req models.OTPRequest) (*models.OTPResponse, error)
}

// Bootstrap decides the first screen: it restores the stored credentials,
// logs in silently and, for unverified accounts, issues a new email OTP.
type Bootstrap struct {
	conn       netmon.Connectivity
	store      store.CredentialStore
	auth       Authenticator
	tokens     *token.Holder
	session    *Session
	log        logging.Logger
	readyDelay time.Duration

	state *observable.Value[State]

	mu    sync.Mutex
	dest  nav.Destination
	ready chan struct{}
	once  sync.Once
	scope *scope.Scope
}

// NewBootstrap wires the controller. A negative readyDelay disables the
// pause; zero selects DefaultReadyDelay.
func NewBootstrap(conn netmon.Connectivity, cs store.CredentialStore, auth Authenticator,
	tokens *token.Holder, sess *Session, log logging.Logger, readyDelay time.Duration) *Bootstrap {
	if readyDelay == 0 {
		readyDelay = DefaultReadyDelay
	}
	if readyDelay < 0 {
		readyDelay = 0
	}
	return &Bootstrap{
		conn:       conn,
		store:      cs,
		auth:       auth,
		tokens:     tokens,
		session:    sess,
		log:        log.With("component", "bootstrap"),
		readyDelay: readyDelay,
		state:      observable.NewComparable(StateInit),
		ready:      make(chan struct{}),
	}
}

func (b *Bootstrap) State() State {
	return b.state.Get()
}

func (b *Bootstrap) SubscribeState(fn func(State)) (unsubscribe func()) {
	return b.state.Subscribe(fn)
}

// Ready is closed once the start destination is final.
func (b *Bootstrap) Ready() <-chan struct{} {
	return b.ready
}

func (b *Bootstrap) IsReady() bool {
	select {
	case <-b.ready:
		return true
	default:
		return false
	}
}

// Destination returns the start screen, or false before READY.
func (b *Bootstrap) Destination() (nav.Destination, bool) {
	if !b.IsReady() {
		return nil, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dest, true
}

// Start runs the sequence in the background. Close cancels it.
func (b *Bootstrap) Start(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.scope != nil {
		return
	}
	b.scope = scope.New(ctx)
	b.scope.Go(func(ctx context.Context) error {
		b.Run(ctx)
		return nil
	})
}

func (b *Bootstrap) Close() error {
	b.mu.Lock()
	s := b.scope
	b.mu.Unlock()
	if s == nil {
		return nil
	}
	return s.Close()
}

func (b *Bootstrap) setState(ctx context.Context, s State) {
	b.log.Debug(ctx, "state", "state", s)
	b.state.Set(s)
}

// Run executes the sequence synchronously and returns the start screen.
// If ctx is cancelled first it returns false and READY is never reached.
// Once READY, later calls return the same screen without doing any work.
func (b *Bootstrap) Run(ctx context.Context) (nav.Destination, bool) {
	if b.IsReady() {
		return b.Destination()
	}

	dest := b.decide(ctx)
	if ctx.Err() != nil {
		return nil, false
	}
	if b.readyDelay > 0 {
		t := time.NewTimer(b.readyDelay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return nil, false
		}
	}

	b.once.Do(func() {
		b.mu.Lock()
		b.dest = dest
		b.mu.Unlock()
		b.setState(ctx, StateReady)
		b.log.Info(ctx, "ready", "destination", dest.String())
		close(b.ready)
	})
	d, _ := b.Destination()
	return d, true
}

func (b *Bootstrap) decide(ctx context.Context) nav.Destination {
	b.setState(ctx, StateCheckingNetwork)
	if !b.conn.IsOnline(ctx) {
		b.log.Info(ctx, "offline, skipping silent login")
		return nav.Login{}
	}

	creds := b.store.Read(ctx)
	if !creds.Complete() {
		b.setState(ctx, StateNoStoredCredentials)
		return nav.Login{}
	}

	b.setState(ctx, StateAttemptingSilentLogin)
	resp, err := b.auth.Login(ctx, models.LoginRequest{Username: *creds.Username, Password: *creds.Password})
	if err != nil {
		b.log.Warn(ctx, "silent login failed", "username", *creds.Username, "error", err)
		b.setState(ctx, StateLoginFailed)
		return nav.Login{}
	}

	b.tokens.Set(resp.Token)
	b.session.SetUser(resp.User)
	user := resp.User

	if user.IsEmailVerified {
		b.setState(ctx, StateLoginOKVerified)
		return nav.Home{}
	}

	b.setState(ctx, StateLoginOKUnverified)
	otp, err := b.auth.SendOTP(ctx, models.OTPRequest{
		Username: user.Username,
		Email:    user.Email,
		Purpose:  models.OTPPurposeVerifyEmail,
	})
	if err != nil {
		b.log.Warn(ctx, "sending verification code failed", "email", user.Email, "error", err)
		return nav.Login{}
	}
	if otp.Status != models.OTPStatusSuccess {
		b.log.Warn(ctx, "verification code rejected", "email", user.Email, "status", otp.Status)
		return nav.Login{}
	}

	return nav.OTP{
		Username: user.Username,
		Email:    user.Email,
		Purpose:  models.OTPPurposeVerifyEmail,
	}
}
