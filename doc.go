package stompy

//Stompy is a frame engine for STOMP style text protocols. It serializes
//typed commands into the wire format, recovers frame boundaries from the
//byte stream, parses raw frames back into structure and keeps asynchronous
//MESSAGE deliveries separate from synchronous command replies on a single
//shared connection. The main type is Conn.

//Example, connect and publish waiting for the broker's receipt:

/*

	opts := stompy.ConnOpts{
		HostAndPort: "localhost:61613",
		Timeout:     20 * time.Second,
	}
	conn, err := stompy.Dial(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Disconnect()

	headers := stompy.NewHeaders()
	headers.Set("destination", "/queue/test")
	frame := conn.Build(stompy.CmdSend, headers, []byte(`{"test":"test"}`), true)
	//Send blocks for the RECEIPT frame because a receipt was requested
	reply, err := conn.Send(frame)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(reply.Command)

	//poll for deliveries without suspending
	msg, err := conn.GetMessage(true)
	if err != nil {
		log.Fatal(err)
	}
	if msg == nil {
		fmt.Println("no message pending")
	}

*/
