package sh

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/uwb.go/pkg/env"
	"github.com/robotalks/uwb.go/pkg/uci"
	"github.com/robotalks/uwb.go/pkg/uwb"
)

// Shell provides ishell backed interactive shell on a device.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoEnable  bool

	Shell  *ishell.Shell
	Config *env.Config
	Device *uwb.Device
}

const (
	shellKey       = "$shell"
	disabledPrompt = "[off] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&EnableCmd,
		&DisableCmd,
		&InitCmd,
		&InfoCmd,
		&CapsCmd,
		&GetConfigCmd,
		&SetConfigCmd,
		&SessionCmd,
		&SendCmd,
		&RawCmd,
		&StatsCmd,
		&RecoverCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
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
	s.Shell.SetPrompt(disabledPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeEnabled wraps command func requires an enabled device.
func MustBeEnabled(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		s := ShellFrom(c)
		if s.Device == nil || s.Device.State() == uwb.StateNone {
			c.Err(fmt.Errorf("not enabled"))
			return
		}
		fn(c)
	}
}

// WithAutoEnable sets AutoEnable.
func (s *Shell) WithAutoEnable(en bool) *Shell {
	s.AutoEnable = en
	return s
}

// Print writes v as JSON or with its string form.
func (s *Shell) Print(c *ishell.Context, v interface{}) {
	if s.OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(fmt.Sprintf("%+v", v))
}

// eventHandler prints everything the device reports.
func (s *Shell) eventHandler() *uwb.EventHandler {
	return &uwb.EventHandler{
		OnDeviceStatus: func(state uci.DeviceState) {
			s.Shell.Printf("DEVICE_STATUS %s\n", state)
		},
		OnSessionStatus: func(ss *uci.SessionStatus) {
			s.Shell.Printf("SESSION_STATUS %#x %s reason=%#x\n", ss.Handle, ss.State, ss.Reason)
		},
		OnRangeData: func(rd *uci.RangeData) {
			for _, m := range rd.Measurements {
				s.Shell.Printf("RANGE %#x #%d %#x status=%s distance=%dcm aoa=%d/%d\n",
					rd.Handle, rd.Seq, m.Address, m.Status, m.Distance, m.AoAAzimuth, m.AoAElevation)
			}
		},
		OnGenericError: func(st uci.Status) {
			s.Shell.Printf("GENERIC_ERROR %s\n", st)
		},
		OnDataReceived: func(dm *uci.DataMessage) {
			s.Shell.Printf("DATA %#x from %#x #%d %s\n", dm.Handle, dm.Address, dm.Seq, hex.EncodeToString(dm.Data))
		},
		OnNotification: func(msg *uci.Message) {
			s.Shell.Printf("NTF %s\n", hex.EncodeToString(msg.Raw()))
		},
		OnRecovery: func() {
			s.Shell.Println("RECOVERED")
		},
	}
}

// Enable creates the device if needed and enables it.
func (s *Shell) Enable(ctx context.Context) (*uci.DeviceInfo, error) {
	if s.Device == nil {
		dev, err := s.Config.NewDevice()
		if err != nil {
			return nil, err
		}
		s.Device = dev
	}
	if err := s.Device.Enable(ctx, s.eventHandler()); err != nil {
		return nil, err
	}
	info, err := s.Device.Init(ctx)
	if err != nil {
		s.Device.Disable(ctx, false)
		return nil, err
	}
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", s.Config.Name))
	return info, nil
}

// Disable disables the device.
func (s *Shell) Disable(ctx context.Context, graceful bool) error {
	if s.Device == nil {
		return nil
	}
	s.Shell.SetPrompt(disabledPrompt)
	return s.Device.Disable(ctx, graceful)
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.AutoEnable {
		if s.Interactive {
			s.Shell.Printf("Enabling %s ...\n", s.Config.HALURL)
		}
		if _, err := s.Enable(context.Background()); err != nil {
			log.Fatalf("enable %q failed: %v", s.Config.HALURL, err)
		}
		defer s.Disable(context.Background(), true)
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

// ParseUint parses decimal or 0x prefixed numbers.
func ParseUint(str string, bits int) (uint64, error) {
	return strconv.ParseUint(str, 0, bits)
}

// ParseHex parses a hex string, spaces and colons are ignored.
func ParseHex(str string) ([]byte, error) {
	str = strings.NewReplacer(" ", "", ":", "", "0x", "").Replace(str)
	return hex.DecodeString(str)
}

// ParseTLVs parses arguments in the form ID=HEX.
func ParseTLVs(args []string) ([]uci.TLV, error) {
	tlvs := make([]uci.TLV, 0, len(args))
	for _, arg := range args {
		pos := strings.IndexByte(arg, '=')
		if pos <= 0 {
			return nil, fmt.Errorf("invalid parameter %q, expect ID=HEX", arg)
		}
		id, err := ParseUint(arg[:pos], 8)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter id %q: %v", arg[:pos], err)
		}
		val, err := ParseHex(arg[pos+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid parameter value %q: %v", arg[pos+1:], err)
		}
		tlvs = append(tlvs, uci.TLV{Type: byte(id), Value: val})
	}
	return tlvs, nil
}

// ParseIDs parses parameter ids.
func ParseIDs(args []string) ([]byte, error) {
	ids := make([]byte, 0, len(args))
	for _, arg := range args {
		id, err := ParseUint(arg, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter id %q: %v", arg, err)
		}
		ids = append(ids, byte(id))
	}
	return ids, nil
}

// ParseControlees parses SHORT_ADDR[:SUB_SESSION_ID] arguments.
func ParseControlees(args []string) ([]uci.Controlee, error) {
	list := make([]uci.Controlee, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 2)
		addr, err := ParseUint(parts[0], 16)
		if err != nil {
			return nil, fmt.Errorf("invalid address %q: %v", parts[0], err)
		}
		ctl := uci.Controlee{ShortAddress: uint16(addr)}
		if len(parts) > 1 {
			sub, err := ParseUint(parts[1], 32)
			if err != nil {
				return nil, fmt.Errorf("invalid sub session %q: %v", parts[1], err)
			}
			ctl.SubSessionID = uint32(sub)
		}
		list = append(list, ctl)
	}
	return list, nil
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(env.NewConfig()).WithAutoEnable(true).Run(flag.Args()...)
}
