// Package sh provides the interactive device shell.
package sh

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/adio.go/pkg/adio"
	"github.com/robotalks/adio.go/pkg/adio/env"
	"github.com/robotalks/adio.go/pkg/channels"
	"github.com/robotalks/adio.go/pkg/transport"
	"github.com/robotalks/adio.go/pkg/transport/serial"
)

// Shell provides an ishell backed interactive shell around one device.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoOpen    bool

	Shell  *ishell.Shell
	Config *env.Config
	Device *adio.Device
}

const (
	shellKey     = "$shell"
	closedPrompt = "[none] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&OpenCmd,
		&CloseCmd,
		&PortsCmd,
		&ResetCmd,
		&FlushCmd,
		&RawCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other command providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(closedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeOpen wraps a command func that requires an open device.
func MustBeOpen(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Device == nil {
			c.Err(fmt.Errorf("no device open"))
			return
		}
		fn(c)
	}
}

// Device gets the open device from ishell context.
func Device(c *ishell.Context) *adio.Device {
	return ShellFrom(c).Device
}

// WithAutoOpen sets AutoOpen.
func (s *Shell) WithAutoOpen(en bool) *Shell {
	s.AutoOpen = en
	return s
}

// Open opens the device using current config.
func (s *Shell) Open() error {
	dev, err := s.Config.Open()
	if err != nil {
		return err
	}
	s.Close()
	s.Device = dev
	name := s.Config.Port
	if s.Config.WebsocketURL != "" {
		name = s.Config.WebsocketURL
	} else if s.Config.SerialNumber != "" {
		name = s.Config.SerialNumber
	}
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", name))
	return nil
}

// Close closes the current device, if any.
func (s *Shell) Close() {
	if s.Device != nil {
		s.Device.Session.Transport.Close()
		s.Device = nil
		s.Shell.SetPrompt(closedPrompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.AutoOpen && (s.Config.Port != "" || s.Config.SerialNumber != "" || s.Config.WebsocketURL != "") {
		if s.Interactive {
			s.Shell.Println("Opening device ...")
		}
		if err := s.Open(); err != nil {
			log.Fatalf("open failed: %v", err)
		}
	}

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

// replyOut is the JSON shape of a transaction result.
type replyOut struct {
	Reply    string `json:"reply,omitempty"`
	Received bool   `json:"received"`
}

// PrintReply prints one transaction result.
func PrintReply(c *ishell.Context, r transport.Reply, err error) {
	if err != nil {
		c.Err(err)
		return
	}
	PrintReplies(c, []transport.Reply{r}, nil)
}

// PrintReplies prints results of a composite operation. A non-nil error
// is printed but the collected replies are still shown.
func PrintReplies(c *ishell.Context, rs []transport.Reply, err error) {
	if err != nil {
		c.Err(err)
	}
	s := ShellFrom(c)
	if s.OutputJSON {
		out := make([]replyOut, len(rs))
		for n, r := range rs {
			out[n] = replyOut{Received: r.Received()}
			if r.Received() {
				out[n].Reply = strings.TrimSpace(r.Text())
			}
		}
		data, jerr := json.Marshal(out)
		if jerr != nil {
			c.Err(jerr)
			return
		}
		c.Println(string(data))
		return
	}
	for _, r := range rs {
		c.Println(strings.TrimSpace(r.Text()))
	}
}

// ParseChannel parses a numeric channel argument.
func ParseChannel(arg string) (int, error) {
	ch, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid channel %q", arg)
	}
	return ch, nil
}

// ParseSelector parses a channel selector argument: "all", a single
// channel, or a comma separated list.
func ParseSelector(arg string) (channels.Selector, error) {
	return channels.ParseSelector(arg)
}

// ParseUint parses a numeric argument, accepting 0x prefixed hex.
func ParseUint(arg string, bits int) (uint64, error) {
	val, err := strconv.ParseUint(arg, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q", arg)
	}
	return val, nil
}

var (
	// OpenCmd opens a device.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "[PORT|SERIALNUM]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			if len(c.Args) > 0 {
				arg := c.Args[0]
				if strings.HasPrefix(arg, "/") || strings.Contains(arg, "COM") {
					s.Config.Port, s.Config.SerialNumber = arg, ""
				} else {
					s.Config.SerialNumber, s.Config.Port = arg, ""
				}
			}
			if err := s.Open(); err != nil {
				c.Err(err)
			}
		},
	}

	// CloseCmd closes the current device.
	CloseCmd = ishell.Cmd{
		Name: "close",
		Help: "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Close()
		},
	}

	// PortsCmd lists attached serial ports.
	PortsCmd = ishell.Cmd{
		Name:    "ports",
		Aliases: []string{"list", "l"},
		Help:    "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			serials, err := serial.List()
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				if serials == nil {
					serials = []string{}
				}
				out, err := json.Marshal(serials)
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(string(out))
				return
			}
			if len(serials) == 0 {
				c.Println("No devices found")
				return
			}
			for _, sn := range serials {
				c.Println(sn)
			}
		},
	}

	// ResetCmd resets the device.
	ResetCmd = ishell.Cmd{
		Name: "reset",
		Help: "[all|adctx]",
		Func: MustBeOpen(func(c *ishell.Context) {
			d := Device(c)
			mode := "all"
			if len(c.Args) > 0 {
				mode = c.Args[0]
			}
			switch mode {
			case "all":
				reply, err := d.ResetAllSettings()
				PrintReply(c, reply, err)
			case "adctx":
				reply, err := d.ResetADCTx()
				PrintReply(c, reply, err)
			default:
				c.Err(fmt.Errorf("unknown reset mode %q", mode))
			}
		}),
	}

	// FlushCmd drains pending input from the device.
	FlushCmd = ishell.Cmd{
		Name: "flush",
		Help: "",
		Func: MustBeOpen(func(c *ishell.Context) {
			drained, err := Device(c).FlushInput()
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("flushed %d bytes\n", len(drained))
		}),
	}

	// RawCmd sends a raw command line and prints the reply.
	RawCmd = ishell.Cmd{
		Name: "raw",
		Help: "*CHHEDDDD#",
		Func: MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("command text required"))
				return
			}
			d := Device(c)
			if _, err := d.Session.Transport.Write([]byte(c.Args[0])); err != nil {
				c.Err(err)
				return
			}
			line, err := d.Session.ReadLine(d.Session.Timeout)
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(strings.TrimSpace(string(line)))
		}),
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(env.NewConfig()).WithAutoOpen(true).Run(flag.Args()...)
}
