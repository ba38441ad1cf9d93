// Command memq-demo exercises the public resource and queue surface: one
// tracking resource, two queues of different element types bound to it, and
// a printout of the resource's statistics before teardown.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/memkit/memkit/mem"
	"github.com/memkit/memkit/queue"
)

type point struct {
	X, Y int
}

func (p point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func run() error {
	r := mem.NewTracking()
	defer r.Close()

	ints := queue.New[int](r)
	defer ints.Close()
	for _, v := range []int{10, 20, 30} {
		if err := ints.Push(v); err != nil {
			return err
		}
	}

	fmt.Print("int queue: ")
	for v := range ints.All() {
		fmt.Printf("%d ", v)
	}
	fmt.Println()

	points := queue.New[point](r)
	defer points.Close()
	for _, p := range []point{{1, 2}, {3, 4}, {5, 6}} {
		if err := points.Push(p); err != nil {
			return err
		}
	}

	fmt.Print("point queue: ")
	for it := points.Begin(); !it.Equal(points.End()); it.Next() {
		p, err := it.Value()
		if err != nil {
			return err
		}
		fmt.Printf("%s ", p)
	}
	fmt.Println()

	s := r.Stats()
	fmt.Printf("resource: %d live blocks, %s live, %s peak, %s total\n",
		s.LiveBlocks,
		humanize.Bytes(uint64(s.LiveBytes)),
		humanize.Bytes(uint64(s.PeakLiveBytes)),
		humanize.Bytes(uint64(s.TotalBytes)))

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "memq-demo:", err)
		os.Exit(1)
	}
}
