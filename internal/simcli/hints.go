// Package simcli implements the offline pieces of the practice sidebar: topic
// hints and a small simulated command line with canned output.
package simcli

import "strings"

// GenericHint is shown for topics without a dedicated hint.
const GenericHint = "Try `help` to see the commands you can run here. Start with `ipconfig` to see your own address, then `ping` your default gateway."

var hints = map[string]string{
	"intro":           "Run `ipconfig` to see how your machine joins the network: an address, a mask and a gateway are all it needs to talk to its neighbours.",
	"osi":             "Each command here lives at a layer: `arp -a` works at layer 2, `ping` and `tracert` at layer 3, `netstat` shows layer 4 sockets and `nslookup` is an application-layer protocol.",
	"encapsulation":   "Run `tracert 8.8.8.8`. Every hop strips the frame and builds a new one, but the IP packet inside travels end to end.",
	"ip-addressing":   "Run `ipconfig` and find the IPv4 address. Is it in a private range (10/8, 172.16/12, 192.168/16)?",
	"subnetting":      "Run `ipconfig` and read the subnet mask. 255.255.255.0 is a /24: how many usable hosts does that leave?",
	"arp":             "Run `arp -a` to see the IP to MAC mappings your machine has learned. Ping the gateway first if the table looks empty.",
	"tcp-udp":         "Run `netstat` and compare the TCP rows (with a state such as ESTABLISHED) to the UDP rows, which have no state at all.",
	"ports":           "Run `netstat` and look at the local and foreign ports. Which well-known services do you recognise?",
	"dns":             "Run `nslookup example.com` and note which server answered. Then try a name that does not exist.",
	"routing":         "Run `ipconfig` to find your default gateway, then `tracert 8.8.8.8` to watch packets leave through it.",
	"icmp":            "Run `ping 192.168.1.1` and then `ping 10.255.255.1`. Compare a reply with a timeout.",
	"troubleshooting": "Work bottom-up: `ipconfig` for an address, `ping` the gateway, `ping 8.8.8.8` for the internet, then `nslookup` for DNS.",
}

// Hint returns the hint text for a lesson topic.
func Hint(topic string) string {
	if h, ok := hints[strings.ToLower(strings.TrimSpace(topic))]; ok {
		return h
	}
	return GenericHint
}

// HasHint reports whether topic has a dedicated hint.
func HasHint(topic string) bool {
	_, ok := hints[strings.ToLower(strings.TrimSpace(topic))]
	return ok
}
