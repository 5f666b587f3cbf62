// Package bridge publishes the events of a UWB device to MQTT and
// serves raw UCI commands from remote clients.
//
// Topics under <prefix><name>/:
//
//	meta  retained JSON description, cleared on exit
//	ntf   events in Typed envelopes
//	cmd   RawCommand from clients
//	rsp   RawResult replies
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/uwb.go/pkg/bridge/mqtt"
	"github.com/robotalks/uwb.go/pkg/core"
	"github.com/robotalks/uwb.go/pkg/msgs"
	"github.com/robotalks/uwb.go/pkg/uci"
)

// Topic suffixes.
const (
	TopicMeta = "meta"
	TopicNtf  = "ntf"
	TopicCmd  = "cmd"
	TopicRsp  = "rsp"
)

// DefaultQueueSize is the number of events buffered for publishing.
const DefaultQueueSize = 256

// Queue is the pub/sub transport.
type Queue interface {
	Pub(topic string, payload []byte, retain bool) error
	Subscribe(pattern string, handler mqtt.Handler) (io.Closer, error)
}

// Commander sends raw UCI commands.
type Commander interface {
	SendRawCommand(ctx context.Context, pkt []byte, cb core.RawCallback) error
}

// Meta describes the device, published retained.
type Meta struct {
	ID         string `json:"id"`
	HAL        string `json:"hal,omitempty"`
	UCIVersion string `json:"uci_version,omitempty"`
	MACVersion string `json:"mac_version,omitempty"`
	PHYVersion string `json:"phy_version,omitempty"`
	Vendor     string `json:"vendor,omitempty"`
}

// SetDeviceInfo fills versions from the device information.
func (m *Meta) SetDeviceInfo(info *uci.DeviceInfo) {
	m.UCIVersion = uci.VersionString(info.UCIVersion)
	m.MACVersion = uci.VersionString(info.MACVersion)
	m.PHYVersion = uci.VersionString(info.PHYVersion)
	m.Vendor = fmt.Sprintf("%x", info.VendorInfo)
}

type outgoing struct {
	topic  string
	msg    msgs.Message
	retain bool
	raw    []byte
}

// Bridge is a core.Handler publishing everything it receives. Next, when
// set, receives everything too.
type Bridge struct {
	Name      string
	Queue     Queue
	Commander Commander
	Next      core.Handler

	lock    sync.Mutex
	meta    Meta
	outCh   chan outgoing
	running bool
}

// New creates a Bridge.
func New(name string, queue Queue, commander Commander) *Bridge {
	return &Bridge{
		Name:      name,
		Queue:     queue,
		Commander: commander,
		meta:      Meta{ID: name},
		outCh:     make(chan outgoing, DefaultQueueSize),
	}
}

// Topic returns the full topic of a suffix.
func (b *Bridge) Topic(suffix string) string {
	return b.Name + "/" + suffix
}

// SetMeta updates and republishes the meta.
func (b *Bridge) SetMeta(meta Meta) {
	b.lock.Lock()
	b.meta = meta
	b.lock.Unlock()
	b.publishMeta()
}

func (b *Bridge) publishMeta() {
	b.lock.Lock()
	data, err := json.Marshal(&b.meta)
	b.lock.Unlock()
	if err != nil {
		glog.Errorf("bridge: encode meta: %v", err)
		return
	}
	b.enqueue(outgoing{topic: b.Topic(TopicMeta), raw: data, retain: true})
}

func (b *Bridge) enqueue(out outgoing) {
	select {
	case b.outCh <- out:
	default:
		glog.Warningf("bridge: queue full, %s dropped", out.topic)
	}
}

func (b *Bridge) publish(suffix string, msg msgs.Message) {
	b.enqueue(outgoing{topic: b.Topic(suffix), msg: msg})
}

// Run implements framework.Runnable.
func (b *Bridge) Run(ctx context.Context) error {
	b.lock.Lock()
	if b.running {
		b.lock.Unlock()
		return fmt.Errorf("bridge %s already running", b.Name)
	}
	b.running = true
	b.lock.Unlock()
	defer func() {
		b.lock.Lock()
		b.running = false
		b.lock.Unlock()
	}()

	sub, err := b.Queue.Subscribe(b.Topic(TopicCmd), func(_ string, payload []byte) {
		b.handleCommand(ctx, payload)
	})
	if err != nil {
		return err
	}
	defer sub.Close()
	b.publishMeta()

	for {
		select {
		case <-ctx.Done():
			if err := b.Queue.Pub(b.Topic(TopicMeta), nil, true); err != nil {
				glog.Warningf("bridge: clear meta: %v", err)
			}
			return ctx.Err()
		case out := <-b.outCh:
			data := out.raw
			if out.msg != nil {
				if data, err = msgs.Encode(out.msg); err != nil {
					glog.Errorf("bridge: encode %T: %v", out.msg, err)
					continue
				}
			}
			if err := b.Queue.Pub(out.topic, data, out.retain); err != nil {
				glog.Warningf("bridge: publish %s: %v", out.topic, err)
			}
		}
	}
}

func (b *Bridge) handleCommand(ctx context.Context, payload []byte) {
	msg, err := msgs.DecodeMessage(payload)
	if err != nil {
		glog.Warningf("bridge: invalid command: %v", err)
		b.reply(nil, err)
		return
	}
	cmd, ok := msg.(*msgs.RawCommand)
	if !ok {
		b.reply(nil, fmt.Errorf("unsupported command %x", msg.TypeID()))
		return
	}
	if b.Commander == nil {
		b.reply(nil, fmt.Errorf("commands not accepted"))
		return
	}
	err = b.Commander.SendRawCommand(ctx, cmd.Packet, func(rsp *uci.Message, err error) {
		if rsp != nil {
			rsp = rsp.Clone()
		}
		b.reply(rsp, err)
	})
	if err != nil {
		b.reply(nil, err)
	}
}

func (b *Bridge) reply(rsp *uci.Message, err error) {
	result := &msgs.RawResult{}
	if rsp != nil {
		result.Packet = rsp.Raw()
	}
	if err != nil {
		result.Error = err.Error()
	}
	b.publish(TopicRsp, result)
}

// HandleResponse implements core.Handler.
func (b *Bridge) HandleResponse(ev core.ResponseEvent, msg *uci.Message) {
	if b.Next != nil {
		b.Next.HandleResponse(ev, msg)
	}
}

// HandleNotification implements core.Handler.
func (b *Bridge) HandleNotification(msg *uci.Message) {
	b.publish(TopicNtf, msgs.FromNotification(msg))
	if b.Next != nil {
		b.Next.HandleNotification(msg)
	}
}

// HandleData implements core.Handler.
func (b *Bridge) HandleData(msg *uci.Message) {
	if dm, err := uci.ParseDataMessage(msg.Payload); err == nil {
		b.publish(TopicNtf, msgs.NewDataReceived(dm))
	} else {
		glog.Warningf("bridge: malformed data: %v", err)
	}
	if b.Next != nil {
		b.Next.HandleData(msg)
	}
}

// HandleRecovery implements core.RecoveryHandler.
func (b *Bridge) HandleRecovery() {
	b.publish(TopicNtf, &msgs.Recovered{})
	if rh, ok := b.Next.(core.RecoveryHandler); ok {
		rh.HandleRecovery()
	}
}
