package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"net/http"

	"github.com/golang/glog"

	"github.com/robotalks/uwb.go/pkg/bridge"
	"github.com/robotalks/uwb.go/pkg/env"
	"github.com/robotalks/uwb.go/pkg/framework"
	"github.com/robotalks/uwb.go/pkg/hal/websocket"
	"github.com/robotalks/uwb.go/pkg/uci"
	"github.com/robotalks/uwb.go/pkg/uwb"
)

var (
	listenAddr string
	halPath    = "/uci"
)

func init() {
	env.SetupFlags()
	flag.StringVar(&listenAddr, "listen", listenAddr, "Serve the HAL to websocket clients on this address instead of running the device")
	flag.StringVar(&halPath, "path", halPath, "HTTP path of the websocket endpoint")
}

func serveHAL(conf *env.Config) framework.Runnable {
	h, err := conf.NewHAL()
	if err != nil {
		glog.Exitf("create HAL: %v", err)
	}
	mux := http.NewServeMux()
	mux.Handle(halPath, websocket.Handler(h))
	server := &http.Server{Addr: listenAddr, Handler: mux}
	return framework.NamedRun("hal-server", framework.RunFunc(func(ctx context.Context) error {
		glog.Infof("serving %s on %s%s", conf.HALURL, listenAddr, halPath)
		return framework.RunWithContextCloser(ctx, server, func() error {
			if err := server.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}))
}

func runDevice(conf *env.Config, runner *framework.Runner) {
	dev := conf.MustNewDevice()
	var handler *bridge.Bridge
	queue, err := conf.NewQueue()
	if err != nil {
		glog.Exitf("create MQTT queue: %v", err)
	}
	if queue != nil {
		if err := queue.Connect(); err != nil {
			glog.Exitf("connect MQTT: %v", err)
		}
		defer queue.Close()
		handler = conf.NewBridge(queue, dev)
		runner.Go(framework.NamedRun("bridge", handler))
	}

	ctx := runner.Context()
	if handler != nil {
		err = dev.Enable(ctx, handler)
	} else {
		err = dev.Enable(ctx, &uwb.EventHandler{})
	}
	if err != nil {
		glog.Exitf("enable: %v", err)
	}
	info, err := dev.Init(ctx)
	if err != nil {
		dev.Disable(context.Background(), false)
		glog.Exitf("init: %v", err)
	}
	glog.Infof("%s enabled, UCI %s", conf.Name, uci.VersionString(info.UCIVersion))
	if handler != nil {
		meta := bridge.Meta{ID: conf.Name, HAL: conf.HALURL}
		meta.SetDeviceInfo(info)
		handler.SetMeta(meta)
	}

	runner.Go(framework.NamedRun("device", framework.RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return dev.Disable(context.Background(), true)
	})))
	if err := runner.Wait(); err != nil {
		glog.Errorf("exit: %v", err)
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	conf := env.NewConfig()
	runner := framework.NewRunner().HandleSignals()
	if listenAddr != "" {
		if err := runner.Go(serveHAL(conf)).Wait(); err != nil {
			glog.Errorf("exit: %v", err)
		}
		return
	}
	runDevice(conf, runner)
}
