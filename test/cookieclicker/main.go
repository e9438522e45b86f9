package main

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

// A tiny cookie-clicker game whose state lives in plain package variables,
// so there is something for llce to find and poke. Attach with the PID this
// prints, search for the cookie count, buy things, rescan, detect.

var (
	cookies     uint64 = 30
	cursors     uint32
	factories   uint32
	cursorCost  uint32 = 10
	factoryCost uint32 = 100
	playerName         = []byte("KnightChaser")
)

// how many cookies each building makes per second
const (
	cookiesPerCursor  = 1
	cookiesPerFactory = 10
)

func printStatus() {
	// clear the screen (ANSI escape)
	fmt.Print("\033[H\033[J")
	fmt.Println("========================================")
	fmt.Printf("PID    : %d\n", os.Getpid())
	fmt.Printf("Player : %s\n", playerName)
	fmt.Printf("Cookies: %d\n", cookies)
	fmt.Println("----------------------------------------")
	fmt.Println("Buildings:")
	fmt.Printf("  Cursors  : %d\n", cursors)
	fmt.Printf("  Factories: %d\n", factories)
	fmt.Println("----------------------------------------")
	fmt.Println("Shop:")
	fmt.Printf("  [c] Buy Cursor  (cost: %d cookies)\n", cursorCost)
	fmt.Printf("  [f] Buy Factory (cost: %d cookies)\n", factoryCost)
	fmt.Println("  [r] Refresh the status")
	fmt.Println("  [q] Quit")
	fmt.Println("----------------------------------------")
	fmt.Println("Any other input = Cookie click (+1)")
	fmt.Print("Enter command > ")
}

func main() {
	reader := bufio.NewReader(os.Stdin)
	lastTime := time.Now()

	for {
		printStatus()

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Goodbye, cookie monster.")
			return
		}

		// generate cookies since last action
		now := time.Now()
		if elapsed := now.Sub(lastTime); elapsed >= time.Second {
			dt := uint64(elapsed / time.Second)
			cookies += uint64(cursors*cookiesPerCursor+factories*cookiesPerFactory) * dt
			lastTime = now
		}

		switch line {
		case "c\n":
			if cookies >= uint64(cursorCost) {
				cookies -= uint64(cursorCost)
				cursors++
				cursorCost = uint32(float64(cursorCost) * 1.15)
				fmt.Println("→ Cursor purchased!")
			} else {
				fmt.Printf("✗ Not enough cookies for a cursor. Current cost: %d, Current cookies: %d\n", cursorCost, cookies)
			}
		case "f\n":
			if cookies >= uint64(factoryCost) {
				cookies -= uint64(factoryCost)
				factories++
				factoryCost = uint32(float64(factoryCost) * 1.15)
				fmt.Println("→ Factory purchased!")
			} else {
				fmt.Printf("✗ Not enough cookies for a factory. Current cost: %d, Current cookies: %d\n", factoryCost, cookies)
			}
		case "r\n":
			// the loop refreshes the status anyway
		case "q\n":
			fmt.Println("Goodbye, cookie monster.")
			return
		default:
			// click!
			cookies++
		}

		// small pause so purchase messages show
		time.Sleep(1500 * time.Millisecond)
	}
}
