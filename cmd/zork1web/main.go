package main

import (
	"flag"
	"log"
	"os"

	"github.com/betazetadev/zork1-web/glk"
	"github.com/betazetadev/zork1-web/storage"
	"github.com/betazetadev/zork1-web/term"
	"github.com/betazetadev/zork1-web/vm"
)

func main() {
	var story string
	var saves string
	var ephemeral bool
	var verbose bool

	flag.StringVar(&story, "s", "", ".star story script to run")
	flag.StringVar(&saves, "d", "saves.db", "Save database file")
	flag.BoolVar(&ephemeral, "m", false, "Keep saves in memory only")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}
	if len(story) == 0 {
		log.Fatalf("%v: No story script given (-s)", os.Args[0])
	}

	var store storage.Store
	if ephemeral {
		store = &storage.MemStore{}
	} else {
		boltStore, err := storage.NewBoltStore(saves)
		if err != nil {
			log.Fatalf("%v: %v", saves, err)
		}
		defer boltStore.Close()
		store = boltStore
	}

	screen, err := term.New()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	defer screen.Fini()

	sess := glk.NewSession(screen, storage.NewBridge(store))

	machine, err := vm.NewScriptMachine(sess, story, nil)
	if err != nil {
		screen.Fini()
		log.Fatalf("%v: %v", story, err)
	}
	machine.Verbose = verbose
	machine.OnExit = screen.Stop

	// The machine is re-entered only through this completion message,
	// after the adapter has copied the line into the machine's buffer.
	sess.LineInput = func(length uint32) {
		if rerr := machine.Resume(length); rerr != nil {
			sess.Fatal(rerr.Error())
		}
	}

	if serr := machine.Start(); serr != nil {
		sess.Fatal(serr.Error())
	}
	sess.FlushOutput()

	screen.Run()
}
