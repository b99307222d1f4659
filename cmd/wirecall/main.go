// Command wirecall is a demo harness for the buffered dispatcher: it
// builds a small fixed keyring, then either replays a byte stream piped
// on stdin through it non-interactively or, with -interactive, puts the
// controlling terminal into raw mode and forwards each keystroke to the
// dispatcher one byte at a time, the way a half-duplex UART bridge would
// feed an embedded target.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/danmuck/wirecall/internal/action"
	"github.com/danmuck/wirecall/internal/config"
	"github.com/danmuck/wirecall/internal/dispatcher"
	"github.com/danmuck/wirecall/internal/dispatcher/buffered"
	"github.com/danmuck/wirecall/internal/keyring"
	"github.com/danmuck/wirecall/internal/logging"
	"github.com/danmuck/wirecall/internal/wire"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "descriptor TOML path (defaults to built-in demo keyring)")
	interactive := pflag.BoolP("interactive", "I", false, "read input bytes from the raw terminal instead of stdin")
	verbose := pflag.BoolP("verbose", "v", false, "log every PacketStatus transition at debug level")
	pflag.Parse()

	logging.ConfigureRuntime()
	log := logging.Logger()

	order, signed, single := wire.LittleEndian, wire.TwosComplement, false
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to load descriptor")
			os.Exit(1)
		}
		if order, err = cfg.ByteOrderValue(); err != nil {
			log.Error().Err(err).Msg("invalid descriptor")
			os.Exit(1)
		}
		if signed, err = cfg.SignedModeValue(); err != nil {
			log.Error().Err(err).Msg("invalid descriptor")
			os.Exit(1)
		}
		if single, err = cfg.Single(); err != nil {
			log.Error().Err(err).Msg("invalid descriptor")
			os.Exit(1)
		}
		log.Info().Str("name", cfg.Name).Msg("descriptor loaded")
	}

	d := demoDispatcher(order, signed)
	log.Info().Int("actions", d.Size()).Str("byte_order", order.String()).Str("signed_mode", signed.String()).Msg("dispatcher ready")

	var bd *buffered.Dispatcher
	if single {
		bd = buffered.NewSingle(d)
	} else {
		bd = buffered.NewDouble(d)
	}
	if *verbose {
		bd = bd.WithLogger(log.Level(zerolog.DebugLevel))
	}

	if *interactive {
		if err := runInteractive(bd); err != nil {
			log.Error().Err(err).Msg("interactive session failed")
			os.Exit(1)
		}
		return
	}
	runStream(bd, os.Stdin, os.Stdout)
}

// demoDispatcher wires together three actions purely to exercise the
// runtime: index 0 sums two u16 scalars, index 1 returns its 4-byte array
// argument reversed, index 2 is a void no-argument heartbeat.
func demoDispatcher(order wire.ByteOrder, signed wire.SignedMode) *dispatcher.Dispatcher {
	add := action.NewWeakAction2[uint16, uint16, uint16](func(a, b uint16) uint16 { return a + b }, order, signed)
	reverse := action.NewOwning(func(in [4]uint8) [4]uint8 {
		return [4]uint8{in[3], in[2], in[1], in[0]}
	}, order, signed)
	ping := action.NewWeakAction0Void(func() {})

	k := keyring.New(order, signed, add.Signature(), reverse.Signature(), ping.Signature())
	return dispatcher.New(k, add, reverse, ping)
}

// runStream feeds every byte of r through bd, writing each fully resolved
// response to w as it completes. A dropped packet is reported on stderr
// and the stream continues.
func runStream(bd *buffered.Dispatcher, r io.Reader, w io.Writer) {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)
	defer out.Flush()

	for {
		b, err := in.ReadByte()
		if err != nil {
			return
		}
		switch bd.Put(b) {
		case buffered.Resolved:
			bd.WriteTo(func(b byte) { out.WriteByte(b) })
			out.Flush()
		case buffered.Dropped:
			fmt.Fprintln(os.Stderr, "wirecall: dropped packet (index out of range)")
		}
	}
}

// runInteractive puts stdin into raw mode for the duration of the
// session and drives bd one keystroke at a time, printing each resolved
// response byte as a hex pair. Ctrl-D ends the session.
func runInteractive(bd *buffered.Dispatcher) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("wirecall: -interactive requires a terminal on stdin")
	}
	prevState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("wirecall: failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, prevState)

	fmt.Fprintln(os.Stderr, "wirecall: interactive mode, Ctrl-D to quit")
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n == 0 || err != nil {
			return nil
		}
		b := buf[0]
		if b == 0x04 { // Ctrl-D
			return nil
		}
		switch bd.Put(b) {
		case buffered.Resolved:
			fmt.Fprint(os.Stderr, "\r\n-> ")
			for bd.IsLoaded() {
				fmt.Fprintf(os.Stderr, "%02x ", bd.Get())
			}
			fmt.Fprint(os.Stderr, "\r\n")
		case buffered.Dropped:
			fmt.Fprint(os.Stderr, "\r\ndropped\r\n")
		}
	}
}
