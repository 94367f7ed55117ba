package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/doorbell/internal/client/client"
	"github.com/dmitrijs2005/doorbell/internal/client/config"
	"github.com/dmitrijs2005/doorbell/internal/client/forms"
	"github.com/dmitrijs2005/doorbell/internal/client/nav"
	"github.com/dmitrijs2005/doorbell/internal/client/netmon"
	"github.com/dmitrijs2005/doorbell/internal/client/services"
	"github.com/dmitrijs2005/doorbell/internal/client/session"
	"github.com/dmitrijs2005/doorbell/internal/client/store"
	"github.com/dmitrijs2005/doorbell/internal/client/token"
	"github.com/dmitrijs2005/doorbell/internal/cryptox"
	"github.com/dmitrijs2005/doorbell/internal/filex"
	"github.com/dmitrijs2005/doorbell/internal/logging"
	"github.com/dmitrijs2005/doorbell/internal/scope"
)

const (
	credentialsFile = "credentials.bin"
	aesKeyFile      = "store.key"
	ageKeyFile      = "store.age"
)

// App is the interactive client. It owns every long-lived component and
// routes the user between screens.
type App struct {
	config *config.Config
	log    logging.Logger

	api      client.Client
	tokens   *token.Holder
	session  *session.Session
	watcher  *netmon.Watcher
	boot     *session.Bootstrap
	auth     services.AuthService
	otp      *services.OTPService
	password *services.PasswordService

	stack        *nav.Stack
	countdown    *services.Countdown
	registerForm *forms.RegisterForm
	registrar    *services.Registrar
	store        store.CredentialStore

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the production object graph: the encrypted credential
// store under DataDir, the REST client and every service on top of them.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	cipher, err := newCipher(cfg, dir)
	if err != nil {
		return nil, err
	}
	cs := store.NewFileStore(filepath.Join(dir, credentialsFile), cipher, log)

	tokens := token.NewHolder()
	api, err := client.NewHTTPClient(cfg.ServerBaseURL, tokens, cfg.HTTPTimeout)
	if err != nil {
		return nil, err
	}

	return assemble(cfg, log, api, tokens, cs, os.Stdin, os.Stdout), nil
}

func newCipher(cfg *config.Config, dir string) (cryptox.Cipher, error) {
	switch cfg.StoreCipher {
	case config.CipherAge:
		c, err := cryptox.LoadOrCreateAgeCipher(filepath.Join(dir, ageKeyFile))
		if err != nil {
			return nil, fmt.Errorf("load age identity: %w", err)
		}
		return c, nil
	default:
		c, err := cryptox.LoadOrCreateAESGCM(filepath.Join(dir, aesKeyFile), []byte(cfg.StorePassphrase))
		if err != nil {
			return nil, fmt.Errorf("load store key: %w", err)
		}
		return c, nil
	}
}

// assemble wires the services around api and cs.
func assemble(cfg *config.Config, log logging.Logger, api client.Client, tokens *token.Holder,
	cs store.CredentialStore, in io.Reader, out io.Writer) *App {
	sess := session.New()
	probe := netmon.NewProbe(api, 0)
	otp := services.NewOTPService(api, sess, log)

	return &App{
		config:    cfg,
		log:       log,
		api:       api,
		tokens:    tokens,
		session:   sess,
		watcher:   netmon.NewWatcher(probe, cfg.OnlineCheckInterval, log),
		boot:      session.NewBootstrap(probe, cs, api, tokens, sess, log, readyDelay(cfg)),
		auth:      services.NewAuthService(api, cs, tokens, sess, log),
		otp:       otp,
		password:  services.NewPasswordService(api, otp, probe, log),
		stack:     nav.NewStack(nav.Login{}),
		countdown: services.NewCountdown(cfg.OTPResendInterval),
		store:     cs,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// readyDelay maps a configured zero onto "no delay".
func readyDelay(cfg *config.Config) time.Duration {
	if cfg.ReadyDelay <= 0 {
		return -1
	}
	return cfg.ReadyDelay
}

// Run bootstraps the session, then serves the REPL until the user exits or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	sc := scope.New(ctx)
	defer sc.Close()

	sc.Go(a.watcher.Run)

	a.boot.Start(sc.Context())
	defer a.boot.Close()

	a.println("Welcome to the doorbell CLI (type 'help' for commands)")
	select {
	case <-a.boot.Ready():
	case <-ctx.Done():
		return ctx.Err()
	}

	dest, _ := a.boot.Destination()
	a.stack.Replace(dest)
	if _, ok := dest.(nav.OTP); ok {
		a.countdown.Start()
	}
	a.render(dest)

	runREPL(sc.Context(), a, a.status, a.reader, a.out)
	return nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
