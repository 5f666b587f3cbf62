package sh

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/uwb.go/pkg/uci"
)

func bg() context.Context {
	return context.Background()
}

func argCount(c *ishell.Context, n int) bool {
	if len(c.Args) < n {
		c.Err(fmt.Errorf("at least %d arguments expected", n))
		return false
	}
	return true
}

func handleArg(c *ishell.Context) (uint32, bool) {
	if !argCount(c, 1) {
		return 0, false
	}
	handle, err := ParseUint(c.Args[0], 32)
	if err != nil {
		c.Err(fmt.Errorf("invalid session handle %q: %v", c.Args[0], err))
		return 0, false
	}
	return uint32(handle), true
}

func printTLVs(c *ishell.Context, tlvs []uci.TLV) {
	s := ShellFrom(c)
	if s.OutputJSON {
		s.Print(c, tlvs)
		return
	}
	for _, tlv := range tlvs {
		c.Printf("%#02x = %s\n", tlv.Type, hex.EncodeToString(tlv.Value))
	}
}

func printParamStatus(c *ishell.Context, list []uci.ParamStatus) {
	s := ShellFrom(c)
	if s.OutputJSON {
		s.Print(c, list)
		return
	}
	if len(list) == 0 {
		c.Println("OK")
		return
	}
	for _, ps := range list {
		c.Printf("%#02x: %s\n", ps.Type, ps.Status)
	}
}

var (
	// EnableCmd enables the device and initializes it.
	EnableCmd = ishell.Cmd{
		Name: "enable",
		Help: "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			info, err := s.Enable(bg())
			if err != nil {
				c.Err(err)
				return
			}
			s.Print(c, info)
		},
	}

	// DisableCmd disables the device.
	DisableCmd = ishell.Cmd{
		Name: "disable",
		Help: "[graceful]",
		Func: func(c *ishell.Context) {
			graceful := len(c.Args) > 0 && c.Args[0] == "graceful"
			if err := ShellFrom(c).Disable(bg(), graceful); err != nil {
				c.Err(err)
			}
		},
	}

	// InitCmd resets the device and reads its information.
	InitCmd = ishell.Cmd{
		Name: "init",
		Help: "",
		Func: MustBeEnabled(func(c *ishell.Context) {
			s := ShellFrom(c)
			info, err := s.Device.Init(bg())
			if err != nil {
				c.Err(err)
				return
			}
			s.Print(c, info)
		}),
	}

	// StatsCmd shows engine counters.
	StatsCmd = ishell.Cmd{
		Name: "stats",
		Help: "",
		Func: MustBeEnabled(func(c *ishell.Context) {
			s := ShellFrom(c)
			engine := s.Device.Engine()
			if engine == nil {
				c.Err(fmt.Errorf("not enabled"))
				return
			}
			stats, err := engine.Stats(bg())
			if err != nil {
				c.Err(err)
				return
			}
			s.Print(c, stats)
		}),
	}

	// RecoverCmd resets the command window.
	RecoverCmd = ishell.Cmd{
		Name: "recover",
		Help: "",
		Func: MustBeEnabled(func(c *ishell.Context) {
			if err := ShellFrom(c).Device.Recover(bg()); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	}

	// InfoCmd shows device information.
	InfoCmd = ishell.Cmd{
		Name: "info",
		Help: "",
		Func: MustBeEnabled(func(c *ishell.Context) {
			s := ShellFrom(c)
			info, err := s.Device.GetDeviceInfo(bg())
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				s.Print(c, info)
				return
			}
			c.Printf("state: %s/%s\n", s.Device.State(), s.Device.DeviceState())
			c.Printf("uci: %s mac: %s phy: %s test: %s\n",
				uci.VersionString(info.UCIVersion), uci.VersionString(info.MACVersion),
				uci.VersionString(info.PHYVersion), uci.VersionString(info.UCITestVersion))
			c.Printf("vendor: %s\n", hex.EncodeToString(info.VendorInfo))
		}),
	}

	// CapsCmd shows device capabilities.
	CapsCmd = ishell.Cmd{
		Name: "caps",
		Help: "",
		Func: MustBeEnabled(func(c *ishell.Context) {
			tlvs, err := ShellFrom(c).Device.GetCapsInfo(bg())
			if err != nil {
				c.Err(err)
				return
			}
			printTLVs(c, tlvs)
		}),
	}

	// GetConfigCmd reads core configurations.
	GetConfigCmd = ishell.Cmd{
		Name: "get-config",
		Help: "ID...",
		Func: MustBeEnabled(func(c *ishell.Context) {
			ids, err := ParseIDs(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			tlvs, err := ShellFrom(c).Device.GetCoreConfig(bg(), ids)
			if err != nil {
				c.Err(err)
				return
			}
			printTLVs(c, tlvs)
		}),
	}

	// SetConfigCmd writes core configurations.
	SetConfigCmd = ishell.Cmd{
		Name: "set-config",
		Help: "ID=HEX...",
		Func: MustBeEnabled(func(c *ishell.Context) {
			tlvs, err := ParseTLVs(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			list, err := ShellFrom(c).Device.SetCoreConfig(bg(), tlvs)
			printParamStatus(c, list)
			if err != nil {
				c.Err(err)
			}
		}),
	}

	// SendCmd sends application data.
	SendCmd = ishell.Cmd{
		Name: "send",
		Help: "HANDLE ADDRESS HEX",
		Func: MustBeEnabled(func(c *ishell.Context) {
			handle, ok := handleArg(c)
			if !ok || !argCount(c, 3) {
				return
			}
			addr, err := ParseUint(c.Args[1], 64)
			if err != nil {
				c.Err(fmt.Errorf("invalid address %q: %v", c.Args[1], err))
				return
			}
			data, err := ParseHex(c.Args[2])
			if err != nil {
				c.Err(err)
				return
			}
			if err := ShellFrom(c).Device.SendData(bg(), handle, addr, data); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	}

	// RawCmd sends a raw UCI packet and prints the response.
	RawCmd = ishell.Cmd{
		Name: "raw",
		Help: "HEX",
		Func: MustBeEnabled(func(c *ishell.Context) {
			if !argCount(c, 1) {
				return
			}
			pkt, err := ParseHex(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			type result struct {
				msg *uci.Message
				err error
			}
			resCh := make(chan result, 1)
			err = ShellFrom(c).Device.SendRawCommand(bg(), pkt, func(msg *uci.Message, err error) {
				if msg != nil {
					msg = msg.Clone()
				}
				resCh <- result{msg: msg, err: err}
			})
			if err != nil {
				c.Err(err)
				return
			}
			select {
			case res := <-resCh:
				if res.err != nil {
					c.Err(res.err)
					return
				}
				c.Println(hex.EncodeToString(res.msg.Raw()))
			case <-time.After(ShellFrom(c).Config.Device.SyncTimeout):
				c.Err(context.DeadlineExceeded)
			}
		}),
	}
)
