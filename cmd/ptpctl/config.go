package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// config holds the flag/JSON-file-derived connection parameters.
// loadConfigFile only runs when -conf names a file, and then the file's
// values (over the defaults) are used and the connection flags are not
// applied; otherwise the CLI relies purely on flags.
type config struct {
	Transport    string `json:"transport"` // "tcp" or "serial"
	Addr         string `json:"addr"`
	Device       string `json:"device"`
	Baud         int    `json:"baud"`
	FriendlyName string `json:"friendlyName"`
	Debug        bool   `json:"debug"`
}

func defaultConfig() config {
	return config{
		Transport:    "tcp",
		Addr:         "192.168.0.1:15740",
		Baud:         115200,
		FriendlyName: "ptpctl",
	}
}

func loadConfigFile(path string, c *config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ptpctl: open config %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("ptpctl: parse config %s: %w", path, err)
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `ptpctl - issue PTP commands to a remote camera over PTP/IP or serial

Usage:
  ptpctl [flags] <command> [args...]

Commands:
  info                  print standard version, vendor, manufacturer/model/serial
  getval <propcode>     print a property's current value (hex propcode, e.g. 0x5007)
  setval <propcode> <v> set a property's value (decimal or 0x-prefixed)
  enum <propcode>       list a property's enumerated values, marking the current one
  opreq <opcode> [params...]
                        report whether the device lists a hex opcode as supported (params are not sent)
  capture               trigger a still capture
  battery               print battery percentage

Flags:`)
}
