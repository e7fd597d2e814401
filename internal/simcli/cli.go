package simcli

import (
	"fmt"
	"net"
	"sort"
	"strings"
)

// Result is the output of one simulated command.
type Result struct {
	Output string `json:"output"`
	// Clear asks the terminal to wipe its scrollback before printing.
	Clear bool `json:"clear,omitempty"`
}

const (
	localIP   = "192.168.1.42"
	gatewayIP = "192.168.1.1"
	dnsIP     = "192.168.1.1"
)

// knownHosts backs the simulated resolver.
var knownHosts = map[string]string{
	"localhost":      "127.0.0.1",
	"router":         gatewayIP,
	"example.com":    "93.184.216.34",
	"google.com":     "142.250.72.14",
	"cloudflare.com": "104.16.132.229",
}

// unreachable addresses time out instead of replying.
var unreachable = map[string]bool{
	"10.255.255.1": true,
}

type command func(args []string) Result

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":       runHelp,
		"clear":      func([]string) Result { return Result{Clear: true} },
		"ping":       runPing,
		"ipconfig":   runIPConfig,
		"ifconfig":   runIfconfig,
		"tracert":    runTraceroute,
		"traceroute": runTraceroute,
		"nslookup":   runNslookup,
		"netstat":    runNetstat,
		"arp":        runARP,
	}
}

// Commands lists the supported command names in sorted order.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run simulates one command line. Nothing touches the real network.
func Run(line string) Result {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}
	}
	name := strings.ToLower(fields[0])
	cmd, ok := commands[name]
	if !ok {
		return Result{Output: fmt.Sprintf("%s: command not found. Type 'help' for a list of commands.", fields[0])}
	}
	return cmd(fields[1:])
}

func runHelp([]string) Result {
	return Result{Output: `Available commands:
  ping <host>          send ICMP echo requests
  ipconfig | ifconfig  show interface configuration
  tracert <host>       trace the route to a host (alias: traceroute)
  nslookup <name>      query DNS for a name
  netstat              list active connections
  arp -a               show the ARP cache
  clear                clear the screen
  help                 show this list`}
}

// resolve maps a host argument to an address. ok is false for unknown names.
func resolve(host string) (string, bool) {
	if ip := net.ParseIP(host); ip != nil {
		return ip.String(), true
	}
	addr, ok := knownHosts[strings.ToLower(host)]
	return addr, ok
}

func runPing(args []string) Result {
	if len(args) == 0 {
		return Result{Output: "usage: ping <host>"}
	}
	host := args[0]
	addr, ok := resolve(host)
	if !ok {
		return Result{Output: fmt.Sprintf("Ping request could not find host %s. Please check the name and try again.", host)}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Pinging %s [%s] with 32 bytes of data:\n", host, addr)
	if unreachable[addr] {
		for i := 0; i < 4; i++ {
			b.WriteString("Request timed out.\n")
		}
		fmt.Fprintf(&b, "\nPing statistics for %s:\n    Packets: Sent = 4, Received = 0, Lost = 4 (100%% loss)", addr)
		return Result{Output: b.String()}
	}

	rtt := latency(addr)
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&b, "Reply from %s: bytes=32 time=%dms TTL=%d\n", addr, rtt+i%2, ttl(addr))
	}
	fmt.Fprintf(&b, "\nPing statistics for %s:\n    Packets: Sent = 4, Received = 4, Lost = 0 (0%% loss)", addr)
	return Result{Output: b.String()}
}

// latency is a fixed per-address round trip so output stays deterministic.
func latency(addr string) int {
	switch {
	case addr == "127.0.0.1":
		return 0
	case strings.HasPrefix(addr, "192.168."):
		return 1
	default:
		return 14
	}
}

func ttl(addr string) int {
	if addr == "127.0.0.1" || strings.HasPrefix(addr, "192.168.") {
		return 64
	}
	return 117
}

func runIPConfig([]string) Result {
	return Result{Output: fmt.Sprintf(`Ethernet adapter Ethernet0:

   Connection-specific DNS Suffix  . : lan
   IPv4 Address. . . . . . . . . . . : %s
   Subnet Mask . . . . . . . . . . . : 255.255.255.0
   Default Gateway . . . . . . . . . : %s`, localIP, gatewayIP)}
}

func runIfconfig([]string) Result {
	return Result{Output: fmt.Sprintf(`eth0: flags=4163<UP,BROADCAST,RUNNING,MULTICAST>  mtu 1500
        inet %s  netmask 255.255.255.0  broadcast 192.168.1.255
        ether 3c:52:82:1a:7f:09  txqueuelen 1000  (Ethernet)

lo: flags=73<UP,LOOPBACK,RUNNING>  mtu 65536
        inet 127.0.0.1  netmask 255.0.0.0`, localIP)}
}

func runTraceroute(args []string) Result {
	if len(args) == 0 {
		return Result{Output: "usage: tracert <host>"}
	}
	host := args[0]
	addr, ok := resolve(host)
	if !ok {
		return Result{Output: fmt.Sprintf("Unable to resolve target system name %s.", host)}
	}

	hops := []string{gatewayIP}
	if addr != gatewayIP && addr != "127.0.0.1" {
		hops = append(hops, "100.64.0.1", "72.14.215.85", addr)
	}
	if addr == "127.0.0.1" {
		hops = []string{addr}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tracing route to %s [%s]\nover a maximum of 30 hops:\n\n", host, addr)
	for i, hop := range hops {
		if unreachable[addr] && i == len(hops)-1 {
			fmt.Fprintf(&b, "%3d     *        *        *     Request timed out.\n", i+1)
			continue
		}
		ms := 1 + i*4
		fmt.Fprintf(&b, "%3d  %3d ms  %3d ms  %3d ms  %s\n", i+1, ms, ms+1, ms, hop)
	}
	b.WriteString("\nTrace complete.")
	return Result{Output: b.String()}
}

func runNslookup(args []string) Result {
	if len(args) == 0 {
		return Result{Output: fmt.Sprintf("Default Server:  router.lan\nAddress:  %s", dnsIP)}
	}
	name := args[0]
	header := fmt.Sprintf("Server:  router.lan\nAddress:  %s\n\n", dnsIP)
	addr, ok := knownHosts[strings.ToLower(name)]
	if !ok {
		return Result{Output: header + fmt.Sprintf("*** router.lan can't find %s: Non-existent domain", name)}
	}
	return Result{Output: header + fmt.Sprintf("Non-authoritative answer:\nName:    %s\nAddress:  %s", name, addr)}
}

func runNetstat([]string) Result {
	return Result{Output: fmt.Sprintf(`Active Connections

  Proto  Local Address          Foreign Address        State
  TCP    %[1]s:50512     93.184.216.34:443      ESTABLISHED
  TCP    %[1]s:50514     142.250.72.14:443      ESTABLISHED
  TCP    0.0.0.0:22             0.0.0.0:0              LISTENING
  UDP    0.0.0.0:53             *:*
  UDP    %[1]s:68        *:*`, localIP)}
}

func runARP(args []string) Result {
	if len(args) == 0 || args[0] != "-a" {
		return Result{Output: "usage: arp -a"}
	}
	return Result{Output: fmt.Sprintf(`Interface: %s --- 0x4
  Internet Address      Physical Address      Type
  %-20s  a4-91-b1-2c-00-01     dynamic
  192.168.1.17          d8-3a-dd-41-9e-52     dynamic
  192.168.1.255         ff-ff-ff-ff-ff-ff     static`, localIP, gatewayIP)}
}
