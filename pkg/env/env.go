// Package env sets up a UWB device and its MQTT bridge from flags and
// environment variables.
package env

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/robotalks/uwb.go/pkg/bridge"
	"github.com/robotalks/uwb.go/pkg/bridge/mqtt"
	"github.com/robotalks/uwb.go/pkg/hal"
	"github.com/robotalks/uwb.go/pkg/hal/serial"
	"github.com/robotalks/uwb.go/pkg/hal/spi"
	"github.com/robotalks/uwb.go/pkg/hal/websocket"
	"github.com/robotalks/uwb.go/pkg/sim"
	"github.com/robotalks/uwb.go/pkg/uwb"
)

// SchemeSim selects the built-in simulated controller.
const SchemeSim = "sim"

// Config provides common options to setup a device.
type Config struct {
	// Name identifies the device on MQTT.
	Name string

	// HALURL selects the transport, e.g.
	//   serial:///dev/ttyUSB0?baud=115200
	//   spi:///dev/spidev0.0?irq=GPIO25
	//   ws://host:port/uci
	//   sim:
	HALURL string

	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string

	Device uwb.Config
}

var defaultConfig = Config{
	HALURL:        "sim:",
	MQTTBrokerURL: "mqtt://localhost:1883/uwb/",
	Device:        uwb.DefaultConfig(),
}

func init() {
	if val := os.Getenv("UWB_HAL_URL"); val != "" {
		defaultConfig.HALURL = val
	}
	if val := os.Getenv("UWB_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	if val := os.Getenv("UWB_NAME"); val != "" {
		defaultConfig.Name = val
	} else {
		defaultConfig.Name = DeviceName()
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Name, "name", defaultConfig.Name, "Device name")
	flag.StringVar(&defaultConfig.HALURL, "hal", defaultConfig.HALURL, "HAL URL (serial, spi, ws, wss, sim)")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL, empty to disable")
	flag.DurationVar(&defaultConfig.Device.Engine.CommandTimeout, "cmd-timeout", defaultConfig.Device.Engine.CommandTimeout, "UCI command timeout")
	flag.IntVar(&defaultConfig.Device.Engine.MaxRetry, "max-retry", defaultConfig.Device.Engine.MaxRetry, "UCI command retries")
	flag.DurationVar(&defaultConfig.Device.SyncTimeout, "sync-timeout", defaultConfig.Device.SyncTimeout, "Timeout of blocking calls")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewHAL creates the HAL selected by HALURL.
func (c *Config) NewHAL() (hal.HAL, error) {
	u, err := url.Parse(c.HALURL)
	if err != nil {
		return nil, fmt.Errorf("invalid HAL URL: %v", err)
	}
	switch strings.ToLower(u.Scheme) {
	case SchemeSim:
		return sim.New(), nil
	case serial.Scheme:
		cfg, err := serial.ParseURL(c.HALURL)
		if err != nil {
			return nil, err
		}
		return serial.New(cfg), nil
	case spi.Scheme:
		cfg, err := spi.ParseURL(c.HALURL)
		if err != nil {
			return nil, err
		}
		return spi.New(cfg), nil
	case websocket.Scheme, websocket.SchemeSecure:
		s, err := websocket.New(c.HALURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown HAL URL scheme: %q", u.Scheme)
	}
}

// NewDevice creates the device on the configured HAL.
func (c *Config) NewDevice() (*uwb.Device, error) {
	h, err := c.NewHAL()
	if err != nil {
		return nil, err
	}
	return uwb.New(c.Device, h), nil
}

// MustNewDevice creates the device and fails on error.
func (c *Config) MustNewDevice() *uwb.Device {
	dev, err := c.NewDevice()
	if err != nil {
		log.Fatalln(err)
	}
	return dev
}

// NewQueue creates the MQTT queue, or nil when MQTT is disabled.
func (c *Config) NewQueue() (*mqtt.Queue, error) {
	if c.MQTTBrokerURL == "" {
		return nil, nil
	}
	opts, prefix, err := mqtt.ClientOptionsFromURL(c.MQTTBrokerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid MQTT URL: %v", err)
	}
	if opts.ClientID == "" {
		opts.SetClientID(fmt.Sprintf("%s-%d", c.Name, time.Now().UnixNano()%100000))
	}
	opts.SetBinaryWill(prefix+c.Name+"/"+bridge.TopicMeta, nil, 1, true)
	return mqtt.NewQueue(opts, prefix), nil
}

// NewBridge creates a bridge publishing the device on the queue.
func (c *Config) NewBridge(queue bridge.Queue, dev *uwb.Device) *bridge.Bridge {
	b := bridge.New(c.Name, queue, dev)
	b.SetMeta(bridge.Meta{ID: c.Name, HAL: c.HALURL})
	return b
}
