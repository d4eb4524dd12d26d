// client/main.go is a minimal CLI probe for the quizpoker gateway: it joins
// a room, prints everything the server broadcasts and turns stdin commands
// into game actions.
package main

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"flag"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/wfunc/quizpoker/network"
)

var playerID string

func send(c *websocket.Conn, msgID uint16, data []byte) error {
	packet := make([]byte, 4+len(data))
	binary.BigEndian.PutUint16(packet[0:2], msgID)
	binary.BigEndian.PutUint16(packet[2:4], uint16(len(data)))
	copy(packet[4:], data)

	return c.WriteMessage(websocket.BinaryMessage, packet)
}

func sendAction(c *websocket.Conn, a network.Action) {
	data, err := network.EncodeAction(a)
	if err != nil {
		log.Println("Encode error:", err)
		return
	}
	if err := send(c, network.MsgTypeAction, data); err != nil {
		log.Println("Write error:", err)
	}
}

func main() {
	addr := flag.String("addr", "localhost:7777", "server address")
	role := flag.String("role", "player", "host, player or display")
	name := flag.String("name", "cli", "display name")
	roomCode := flag.String("room", "TEST", "room code to join")
	flag.Parse()

	u := url.URL{Scheme: "ws", Host: *addr, Path: "/ws"}
	log.Printf("Connecting to %s", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("Dial failed: %v", err)
	}
	defer c.Close()

	done := make(chan struct{})

	// Read loop
	go func() {
		defer close(done)
		for {
			_, message, err := c.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}
			if len(message) < 4 {
				log.Printf("Received invalid packet of size %d", len(message))
				continue
			}
			msgID := binary.BigEndian.Uint16(message[0:2])
			data := message[4:]

			if msgID == network.MsgTypeAck {
				var ack network.Ack
				if err := json.Unmarshal(data, &ack); err == nil && ack.PlayerID != "" {
					playerID = ack.PlayerID
				}
			}
			log.Printf("<- RECV (ID: %d): %s", msgID, string(data))
		}
	}()

	hello, _ := json.Marshal(network.Hello{
		Role:     network.Role(*role),
		Name:     *name,
		RoomCode: *roomCode,
	})
	if err := send(c, network.MsgTypeHello, hello); err != nil {
		log.Fatalf("Hello failed: %v", err)
	}

	log.Println("Commands: start | question | deal | community | bet <n> | fold | reveal | end | new | quit")

	reader := bufio.NewReader(os.Stdin)
	for {
		select {
		case <-done:
			return
		default:
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "start":
			sendAction(c, network.StartGame{})
		case "question":
			sendAction(c, network.SetQuestion{})
		case "deal":
			sendAction(c, network.DealInitialCards{})
		case "community":
			sendAction(c, network.DealCommunityCards{})
		case "bet":
			if len(fields) < 2 {
				log.Println("Usage: bet <amount>")
				continue
			}
			amount, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				log.Println("Bad amount:", fields[1])
				continue
			}
			sendAction(c, network.Bet{PlayerID: playerID, Amount: amount})
		case "fold":
			sendAction(c, network.Fold{PlayerID: playerID})
		case "reveal":
			sendAction(c, network.RevealAnswer{})
		case "end":
			sendAction(c, network.EndRound{})
		case "new":
			sendAction(c, network.NewGame{})
		case "quit":
			c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		default:
			log.Println("Unknown command:", fields[0])
		}
	}
}
