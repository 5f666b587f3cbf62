package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/uwb.go/pkg/bridge/mqtt"
	"github.com/robotalks/uwb.go/pkg/core"
	"github.com/robotalks/uwb.go/pkg/msgs"
	pb "github.com/robotalks/uwb.go/pkg/proto/uwb/v1"
	"github.com/robotalks/uwb.go/pkg/uci"
)

type published struct {
	topic   string
	payload []byte
	retain  bool
}

type fakeQueue struct {
	lock     sync.Mutex
	handlers map[string]mqtt.Handler
	pubCh    chan published
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{handlers: make(map[string]mqtt.Handler), pubCh: make(chan published, 64)}
}

func (q *fakeQueue) Pub(topic string, payload []byte, retain bool) error {
	q.pubCh <- published{topic: topic, payload: payload, retain: retain}
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func (q *fakeQueue) Subscribe(pattern string, handler mqtt.Handler) (io.Closer, error) {
	q.lock.Lock()
	defer q.lock.Unlock()
	q.handlers[pattern] = handler
	return closerFunc(func() error {
		q.lock.Lock()
		defer q.lock.Unlock()
		delete(q.handlers, pattern)
		return nil
	}), nil
}

func (q *fakeQueue) deliver(t *testing.T, topic string, payload []byte) {
	q.lock.Lock()
	h := q.handlers[topic]
	q.lock.Unlock()
	require.NotNil(t, h, topic)
	h(topic, payload)
}

func (q *fakeQueue) next(t *testing.T) published {
	select {
	case p := <-q.pubCh:
		return p
	case <-time.After(time.Second):
		t.Fatal("nothing published")
	}
	return published{}
}

func (q *fakeQueue) nextMessage(t *testing.T, topic string) msgs.Message {
	p := q.next(t)
	require.Equal(t, topic, p.topic)
	msg, err := msgs.DecodeMessage(p.payload)
	require.NoError(t, err)
	return msg
}

type fakeCommander struct {
	err error
	rsp *uci.Message
}

func (c *fakeCommander) SendRawCommand(ctx context.Context, pkt []byte, cb core.RawCallback) error {
	if c.err != nil {
		return c.err
	}
	go cb(c.rsp, nil)
	return nil
}

func startBridge(t *testing.T, b *Bridge, q *fakeQueue) func() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()
	p := q.next(t)
	require.Equal(t, "uwb0/meta", p.topic)
	require.True(t, p.retain)
	var meta Meta
	require.NoError(t, json.Unmarshal(p.payload, &meta))
	require.Equal(t, "uwb0", meta.ID)
	return func() {
		cancel()
		require.Equal(t, context.Canceled, <-done)
		p := q.next(t)
		require.Equal(t, "uwb0/meta", p.topic)
		require.True(t, p.retain)
		require.Empty(t, p.payload)
	}
}

func TestBridgeEvents(t *testing.T) {
	q := newFakeQueue()
	var forwarded []*uci.Message
	recovered := false
	b := New("uwb0", q, nil)
	b.Next = &core.HandlerFuncs{
		NotificationFunc: func(msg *uci.Message) { forwarded = append(forwarded, msg) },
		RecoveryFunc:     func() { recovered = true },
	}
	stop := startBridge(t, b, q)
	defer stop()

	ss := &uci.SessionStatus{Handle: 0x101, State: uci.SessionStateActive}
	ntf := uci.NewMessage(uci.MTNotification, uci.GIDSessionConfig, uci.OIDSessionStatus, ss.AppendTo(nil))
	b.HandleNotification(ntf)
	msg := q.nextMessage(t, "uwb0/ntf")
	status, ok := msg.(*msgs.SessionStatus)
	require.True(t, ok)
	require.Equal(t, uint32(0x101), status.Handle)
	require.Equal(t, uint32(uci.SessionStateActive), status.State)
	require.Len(t, forwarded, 1)

	vendor := uci.NewMessage(uci.MTNotification, 0x0e, 0x01, []byte{1, 2})
	b.HandleNotification(vendor)
	msg = q.nextMessage(t, "uwb0/ntf")
	raw, ok := msg.(*msgs.Notification)
	require.True(t, ok)
	require.Equal(t, vendor.Bytes(), raw.Packet)

	dm := &uci.DataMessage{Handle: 0x101, Address: 2, Seq: 7, Data: []byte("hi")}
	b.HandleData(uci.NewMessage(uci.MTData, 0, uci.DPFDataReceive, dm.AppendTo(nil)))
	msg = q.nextMessage(t, "uwb0/ntf")
	data, ok := msg.(*msgs.DataReceived)
	require.True(t, ok)
	require.Equal(t, uint32(7), data.Seq)
	require.Equal(t, []byte("hi"), data.Data)

	b.HandleRecovery()
	_, ok = q.nextMessage(t, "uwb0/ntf").(*msgs.Recovered)
	require.True(t, ok)
	require.True(t, recovered)
}

func TestBridgeMeta(t *testing.T) {
	q := newFakeQueue()
	b := New("uwb0", q, nil)
	stop := startBridge(t, b, q)
	defer stop()

	meta := Meta{ID: "uwb0", HAL: "sim:"}
	meta.SetDeviceInfo(&uci.DeviceInfo{UCIVersion: 0x2001, VendorInfo: []byte{0xab}})
	b.SetMeta(meta)
	p := q.next(t)
	require.Equal(t, "uwb0/meta", p.topic)
	require.True(t, p.retain)
	var decoded Meta
	require.NoError(t, json.Unmarshal(p.payload, &decoded))
	require.Equal(t, "1.2.0", decoded.UCIVersion)
	require.Equal(t, "ab", decoded.Vendor)
	require.Equal(t, "sim:", decoded.HAL)
}

func TestBridgeCommands(t *testing.T) {
	rsp := uci.NewMessage(uci.MTResponse, uci.GIDCore, uci.OIDCoreGetDeviceInfo, []byte{0})
	cmdr := &fakeCommander{rsp: rsp}
	q := newFakeQueue()
	b := New("uwb0", q, cmdr)
	stop := startBridge(t, b, q)
	defer stop()

	cmd, err := msgs.Encode(&msgs.RawCommand{RawCommand: pb.RawCommand{Packet: []byte{0x20, 0x02, 0, 0}}})
	require.NoError(t, err)
	q.deliver(t, "uwb0/cmd", cmd)
	result, ok := q.nextMessage(t, "uwb0/rsp").(*msgs.RawResult)
	require.True(t, ok)
	require.Empty(t, result.Error)
	require.Equal(t, rsp.Bytes(), result.Packet)

	cmdr.err = errors.New("not enabled")
	q.deliver(t, "uwb0/cmd", cmd)
	result, ok = q.nextMessage(t, "uwb0/rsp").(*msgs.RawResult)
	require.True(t, ok)
	require.Equal(t, "not enabled", result.Error)
	require.Empty(t, result.Packet)

	q.deliver(t, "uwb0/cmd", []byte{0xff})
	result, ok = q.nextMessage(t, "uwb0/rsp").(*msgs.RawResult)
	require.True(t, ok)
	require.NotEmpty(t, result.Error)
}
