package course

// builtinModules is the course shipped with the binary.
var builtinModules = []Module{
	{
		ID:      "foundations",
		Title:   "Network Foundations",
		Summary: "Layered models and how data moves between hosts.",
		Lessons: []Lesson{
			{
				ID:    "what-is-a-network",
				Title: "What Is a Network?",
				Topic: "intro",
				Body: `# What Is a Network?

A computer network is a set of devices that exchange data over shared links.
Hosts (laptops, phones, servers) produce and consume data; intermediate
devices (switches, routers, access points) forward it.

## Scope

- **LAN**: a home or office network under one administrator.
- **WAN**: links that join LANs across cities or continents.
- **Internet**: the global network of networks, glued together by IP.

## Try it

Open the **CLI** tab and run ` + "`ipconfig`" + ` to see the addresses the
simulated host was given.
`,
			},
			{
				ID:    "osi-model",
				Title: "The OSI Model",
				Topic: "osi",
				Body: `# The OSI Model

The OSI reference model splits networking into seven layers. Each layer
serves the one above it and relies on the one below.

| # | Layer        | Unit    | Example            |
|---|--------------|---------|--------------------|
| 7 | Application  | Data    | HTTP, DNS          |
| 6 | Presentation | Data    | TLS, encodings     |
| 5 | Session      | Data    | RPC sessions       |
| 4 | Transport    | Segment | TCP, UDP           |
| 3 | Network      | Packet  | IPv4, IPv6, ICMP   |
| 2 | Data link    | Frame   | Ethernet, Wi-Fi    |
| 1 | Physical     | Bits    | Copper, fibre, RF  |

A common mnemonic from layer 1 upward: *Please Do Not Throw Sausage Pizza Away*.
`,
			},
			{
				ID:    "tcp-ip-model",
				Title: "The TCP/IP Model and Encapsulation",
				Topic: "encapsulation",
				Body: `# The TCP/IP Model and Encapsulation

Real stacks follow the four-layer TCP/IP model: link, internet, transport
and application.

As data travels down the stack, every layer wraps it with its own header:

` + "```text" + `
[ Ethernet | IP | TCP | HTTP request ] FCS
` + "```" + `

The receiver strips the headers in the opposite order. This is
**encapsulation** and **decapsulation**.
`,
			},
		},
	},
	{
		ID:      "addressing",
		Title:   "Addressing",
		Summary: "MAC addresses, IPv4, subnetting and ARP.",
		Lessons: []Lesson{
			{
				ID:    "ipv4",
				Title: "IPv4 Addresses",
				Topic: "ip-addressing",
				Body: `# IPv4 Addresses

An IPv4 address is 32 bits written as four decimal octets, for example
` + "`192.168.1.10`" + `. The subnet mask says which bits name the network
and which name the host.

Private ranges (RFC 1918) are not routed on the public Internet:

- ` + "`10.0.0.0/8`" + `
- ` + "`172.16.0.0/12`" + `
- ` + "`192.168.0.0/16`" + `

The loopback address ` + "`127.0.0.1`" + ` always refers to the local host.
`,
			},
			{
				ID:    "subnetting",
				Title: "Subnetting and CIDR",
				Topic: "subnetting",
				Body: `# Subnetting and CIDR

CIDR notation appends the prefix length to the address: ` + "`192.168.1.0/24`" + `
means the first 24 bits are the network.

For a prefix of length *n*:

- addresses in the block: 2^(32-n)
- usable hosts: 2^(32-n) - 2 (network and broadcast are reserved)

| Prefix | Mask            | Hosts |
|--------|-----------------|-------|
| /24    | 255.255.255.0   | 254   |
| /26    | 255.255.255.192 | 62    |
| /30    | 255.255.255.252 | 2     |
`,
			},
			{
				ID:    "arp",
				Title: "ARP: From IP to MAC",
				Topic: "arp",
				Body: `# ARP: From IP to MAC

Frames on a LAN are delivered by MAC address, so a host that wants to reach
` + "`192.168.1.1`" + ` first broadcasts an ARP request: *who has 192.168.1.1?*
The owner replies with its MAC address and both sides cache the mapping.

Run ` + "`arp -a`" + ` in the CLI tab to inspect the simulated cache.
`,
			},
		},
	},
	{
		ID:      "transport",
		Title:   "Transport and Services",
		Summary: "TCP, UDP, ports and the services built on them.",
		Lessons: []Lesson{
			{
				ID:    "tcp-vs-udp",
				Title: "TCP vs UDP",
				Topic: "tcp-udp",
				Body: `# TCP vs UDP

**TCP** is connection oriented. A three-way handshake (SYN, SYN-ACK, ACK)
opens the connection, and sequence numbers give reliable, ordered delivery
with retransmission and flow control.

**UDP** is connectionless. Datagrams may be lost or reordered, but there is
no handshake, which suits DNS lookups, voice and games.
`,
			},
			{
				ID:    "ports",
				Title: "Ports and Sockets",
				Topic: "ports",
				Body: `# Ports and Sockets

A port number (0-65535) identifies an application on a host. A socket is
the pair *address:port*; a TCP connection is identified by both ends.

| Port | Service |
|------|---------|
| 22   | SSH     |
| 53   | DNS     |
| 80   | HTTP    |
| 443  | HTTPS   |

` + "`netstat`" + ` in the CLI tab lists the simulated open connections.
`,
			},
			{
				ID:    "dns",
				Title: "DNS",
				Topic: "dns",
				Body: `# DNS

The Domain Name System maps names like ` + "`example.com`" + ` to addresses.
A stub resolver asks a recursive resolver, which walks from the root servers
to the TLD servers to the authoritative server for the zone.

Common record types: ` + "`A`" + `, ` + "`AAAA`" + `, ` + "`CNAME`" + `, ` + "`MX`" + `, ` + "`NS`" + `, ` + "`TXT`" + `.

Try ` + "`nslookup example.com`" + ` in the CLI tab.
`,
			},
		},
	},
	{
		ID:      "routing",
		Title:   "Routing and Troubleshooting",
		Summary: "How packets find their way and how to debug when they don't.",
		Lessons: []Lesson{
			{
				ID:    "default-gateway",
				Title: "Default Gateways and Routing Tables",
				Topic: "routing",
				Body: `# Default Gateways and Routing Tables

A host sends traffic for its own subnet directly. Everything else goes to
the **default gateway**, a router that consults its routing table and picks
the most specific matching prefix (longest prefix match).

Routes are learned statically or through protocols such as OSPF and BGP.
`,
			},
			{
				ID:    "icmp-ping",
				Title: "ICMP and Ping",
				Topic: "icmp",
				Body: `# ICMP and Ping

ICMP carries control messages for IP. ` + "`ping`" + ` sends *echo request*
messages and reports each *echo reply* with its round-trip time.

A failed ping does not always mean the host is down: firewalls often drop ICMP.
`,
			},
			{
				ID:    "traceroute",
				Title: "Traceroute and a Troubleshooting Method",
				Topic: "troubleshooting",
				Body: `# Traceroute and a Troubleshooting Method

` + "`traceroute`" + ` (` + "`tracert`" + ` on Windows) sends probes with increasing
TTL values. Each router that drops a probe answers with *time exceeded*,
revealing the path hop by hop.

Work bottom-up when something is broken:

1. Is the link up? (` + "`ipconfig`" + `)
2. Can you reach the gateway? (` + "`ping 192.168.1.1`" + `)
3. Can you reach a public IP? (` + "`ping 8.8.8.8`" + `)
4. Does name resolution work? (` + "`nslookup example.com`" + `)
`,
			},
		},
	},
}
