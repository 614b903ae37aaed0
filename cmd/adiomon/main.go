package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/robotalks/adio.go/pkg/adio/env"
	"github.com/robotalks/adio.go/pkg/run"
	"github.com/robotalks/adio.go/pkg/telemetry"
	"github.com/robotalks/adio.go/pkg/telemetry/msgs"
)

var (
	mqttURL  = "mqtt://localhost:1883/adio/"
	deviceID string
	interval = telemetry.DefaultInterval
	gpio     bool
	encoders string
	adc      string
	dump     bool
)

func init() {
	if val := os.Getenv("ADIO_MQTT_URL"); val != "" {
		mqttURL = val
	}
	env.SetupFlags()
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&deviceID, "id", deviceID, "Device ID in topics. Defaults to the machine ID.")
	flag.DurationVar(&interval, "interval", interval, "Polling interval.")
	flag.BoolVar(&gpio, "gpio", true, "Poll the digital port.")
	flag.StringVar(&encoders, "enc", encoders, "Encoder channels to poll, comma separated.")
	flag.StringVar(&adc, "adc", adc, "ADC channels to sample, comma separated.")
	flag.BoolVar(&dump, "dump", dump, "Subscribe and print instead of publishing. No device needed.")
}

func runDump(q *telemetry.Queue) {
	q.Sub("#", func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/meta") {
			log.Printf("%s: %s", topic, string(payload))
			return
		}
		typed, err := msgs.DecodeTyped(payload)
		if err != nil {
			log.Printf("%s: bad message: %v", topic, err)
			return
		}
		msg, err := typed.Decode()
		if err != nil {
			log.Printf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
			return
		}
		log.Printf("%s: [%s] %s", topic,
			reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
			msg.String())
	})
	<-(chan struct{})(nil)
}

func channelList(arg string) []int {
	var chs []int
	for _, item := range strings.Split(arg, ",") {
		if item = strings.TrimSpace(item); item == "" {
			continue
		}
		ch, err := strconv.Atoi(item)
		if err != nil {
			log.Fatalf("invalid channel %q", item)
		}
		chs = append(chs, ch)
	}
	return chs
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := telemetry.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if err = q.Connect(); err != nil {
		log.Fatalln(err)
	}
	if dump {
		runDump(q)
	}

	conf := env.NewConfig()
	dev := conf.MustOpen()

	pub := telemetry.NewPublisher(dev, q)
	if deviceID != "" {
		pub.DeviceID = deviceID
	}
	pub.Interval = interval
	pub.GPIO = gpio
	pub.Encoders = channelList(encoders)
	pub.ADC = channelList(adc)
	pub.Meta = &msgs.DeviceMeta{
		ID:       pub.DeviceID,
		Port:     conf.Port,
		BaudRate: uint32(conf.BaudRate),
	}

	runner := run.NewRunner().HandleSignals()
	runner.Go(pub)
	if err = runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
