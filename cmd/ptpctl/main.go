// Command ptpctl issues PTP commands to a remote camera over PTP/IP
// (TCP) or a direct serial link.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/malc0mn/ptpcore/ptp"
	"github.com/malc0mn/ptpcore/transport"
)

var (
	version   = "0.0.0"
	buildTime = "unknown"
)

type debugLogger struct{}

func (debugLogger) Debugf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

func main() {
	conf := defaultConfig()

	var (
		flagHelp    = flag.Bool("help", false, "show usage")
		flagVersion = flag.Bool("version", false, "print version and exit")
		flagConf    = flag.String("conf", "", "path to a JSON config file")
		flagTrans   = flag.String("transport", conf.Transport, `transport to use: "tcp" or "serial"`)
		flagAddr    = flag.String("addr", conf.Addr, "host:port for the tcp transport")
		flagDevice  = flag.String("device", conf.Device, "serial device path for the serial transport")
		flagBaud    = flag.Int("baud", conf.Baud, "baud rate for the serial transport")
		flagName    = flag.String("friendly-name", conf.FriendlyName, "friendly name advertised to the responder")
		flagDebug   = flag.Bool("debug", conf.Debug, "enable debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	if *flagHelp {
		usage()
		flag.PrintDefaults()
		os.Exit(0)
	}
	if *flagVersion {
		fmt.Printf("ptpctl version %s built on %s\n", version, buildTime)
		os.Exit(0)
	}

	if *flagConf != "" {
		if err := loadConfigFile(*flagConf, &conf); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	} else {
		conf.Transport = *flagTrans
		conf.Addr = *flagAddr
		conf.Device = *flagDevice
		conf.Baud = *flagBaud
		conf.FriendlyName = *flagName
		conf.Debug = *flagDebug
	}

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	tr, closeFn, err := dialTransport(conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(4)
	}
	defer closeFn()

	var logger ptp.Logger
	if conf.Debug {
		logger = debugLogger{}
	}

	e := ptp.NewEngine(tr, logger)
	if err := e.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing engine: %s\n", err)
		os.Exit(5)
	}

	cmd := commandByName(args[0])
	fmt.Print(cmd(e, args[1:]))
}

func dialTransport(conf config) (ptp.Transport, func() error, error) {
	switch conf.Transport {
	case "tcp":
		t, err := transport.DialTCP(conf.Addr, conf.FriendlyName, 10*time.Second)
		if err != nil {
			return nil, nil, err
		}
		return t, t.Close, nil
	case "serial":
		t, err := transport.OpenSerial(transport.SerialConfig{Name: conf.Device, Baud: conf.Baud})
		if err != nil {
			return nil, nil, err
		}
		return t, t.Close, nil
	default:
		return nil, nil, fmt.Errorf("ptpctl: unknown transport %q", conf.Transport)
	}
}
