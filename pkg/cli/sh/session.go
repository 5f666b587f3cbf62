package sh

import (
	"fmt"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/uwb.go/pkg/uci"
)

var sessionTypes = map[string]uci.SessionType{
	"ranging":      uci.SessionTypeRanging,
	"ranging-data": uci.SessionTypeRangingData,
	"data":         uci.SessionTypeData,
	"test":         uci.SessionTypeTest,
}

// SessionCmd groups session commands.
var SessionCmd = ishell.Cmd{
	Name:    "session",
	Aliases: []string{"s"},
	Help:    "session commands",
	Func: MustBeEnabled(func(c *ishell.Context) {
		s := ShellFrom(c)
		sessions := s.Device.Sessions()
		if s.OutputJSON {
			s.Print(c, sessions)
			return
		}
		if len(sessions) == 0 {
			c.Println("No sessions")
			return
		}
		for _, ss := range sessions {
			c.Printf("%#x id=%d type=%#x %s\n", ss.Handle, ss.ID, byte(ss.Type), ss.State)
		}
	}),
}

func init() {
	SessionCmd.AddCmd(&ishell.Cmd{
		Name: "init",
		Help: "ID [ranging|ranging-data|data|test]",
		Func: MustBeEnabled(func(c *ishell.Context) {
			if !argCount(c, 1) {
				return
			}
			id, err := ParseUint(c.Args[0], 32)
			if err != nil {
				c.Err(fmt.Errorf("invalid session id %q: %v", c.Args[0], err))
				return
			}
			typ := uci.SessionTypeRanging
			if len(c.Args) > 1 {
				var ok bool
				if typ, ok = sessionTypes[strings.ToLower(c.Args[1])]; !ok {
					c.Err(fmt.Errorf("unknown session type %q", c.Args[1]))
					return
				}
			}
			handle, err := ShellFrom(c).Device.SessionInit(bg(), uint32(id), typ)
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("%#x\n", handle)
		}),
	})
	SessionCmd.AddCmd(&ishell.Cmd{
		Name: "deinit",
		Help: "HANDLE",
		Func: MustBeEnabled(func(c *ishell.Context) {
			if handle, ok := handleArg(c); ok {
				if err := ShellFrom(c).Device.SessionDeinit(bg(), handle); err != nil {
					c.Err(err)
					return
				}
				c.Println("OK")
			}
		}),
	})
	SessionCmd.AddCmd(&ishell.Cmd{
		Name: "set",
		Help: "HANDLE ID=HEX...",
		Func: MustBeEnabled(func(c *ishell.Context) {
			handle, ok := handleArg(c)
			if !ok {
				return
			}
			tlvs, err := ParseTLVs(c.Args[1:])
			if err != nil {
				c.Err(err)
				return
			}
			list, err := ShellFrom(c).Device.SetAppConfig(bg(), handle, tlvs)
			printParamStatus(c, list)
			if err != nil {
				c.Err(err)
			}
		}),
	})
	SessionCmd.AddCmd(&ishell.Cmd{
		Name: "get",
		Help: "HANDLE ID...",
		Func: MustBeEnabled(func(c *ishell.Context) {
			handle, ok := handleArg(c)
			if !ok {
				return
			}
			ids, err := ParseIDs(c.Args[1:])
			if err != nil {
				c.Err(err)
				return
			}
			tlvs, err := ShellFrom(c).Device.GetAppConfig(bg(), handle, ids)
			if err != nil {
				c.Err(err)
				return
			}
			printTLVs(c, tlvs)
		}),
	})
	SessionCmd.AddCmd(&ishell.Cmd{
		Name: "state",
		Help: "HANDLE",
		Func: MustBeEnabled(func(c *ishell.Context) {
			if handle, ok := handleArg(c); ok {
				state, err := ShellFrom(c).Device.GetSessionState(bg(), handle)
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(state.String())
			}
		}),
	})
	SessionCmd.AddCmd(&ishell.Cmd{
		Name: "count",
		Help: "",
		Func: MustBeEnabled(func(c *ishell.Context) {
			count, err := ShellFrom(c).Device.GetSessionCount(bg())
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(count)
		}),
	})
	SessionCmd.AddCmd(&ishell.Cmd{
		Name: "start",
		Help: "HANDLE",
		Func: MustBeEnabled(func(c *ishell.Context) {
			if handle, ok := handleArg(c); ok {
				if err := ShellFrom(c).Device.StartRanging(bg(), handle); err != nil {
					c.Err(err)
					return
				}
				c.Println("OK")
			}
		}),
	})
	SessionCmd.AddCmd(&ishell.Cmd{
		Name: "stop",
		Help: "HANDLE",
		Func: MustBeEnabled(func(c *ishell.Context) {
			if handle, ok := handleArg(c); ok {
				if err := ShellFrom(c).Device.StopRanging(bg(), handle); err != nil {
					c.Err(err)
					return
				}
				c.Println("OK")
			}
		}),
	})
	SessionCmd.AddCmd(&ishell.Cmd{
		Name: "ranges",
		Help: "HANDLE",
		Func: MustBeEnabled(func(c *ishell.Context) {
			if handle, ok := handleArg(c); ok {
				count, err := ShellFrom(c).Device.GetRangingCount(bg(), handle)
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(count)
			}
		}),
	})
	SessionCmd.AddCmd(&ishell.Cmd{
		Name: "multicast",
		Help: "HANDLE add|del ADDR[:SUBSESSION]...",
		Func: MustBeEnabled(func(c *ishell.Context) {
			handle, ok := handleArg(c)
			if !ok || !argCount(c, 3) {
				return
			}
			var action byte
			switch c.Args[1] {
			case "add":
				action = uci.MulticastAdd
			case "del", "delete":
				action = uci.MulticastDelete
			default:
				c.Err(fmt.Errorf("unknown action %q", c.Args[1]))
				return
			}
			list, err := ParseControlees(c.Args[2:])
			if err != nil {
				c.Err(err)
				return
			}
			if err := ShellFrom(c).Device.UpdateMulticastList(bg(), handle, action, list); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		}),
	})
}
