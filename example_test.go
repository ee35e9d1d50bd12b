package gutil_test

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/jlanguell/gutil"
	"github.com/jlanguell/gutil/format"
)

func ExampleAppendInt32() {
	buf := make([]byte, 6)
	cur := gutil.AppendInt32(buf, 0, 0x12345678)
	cur = gutil.AppendInt16(buf, cur, 0x1A2B)

	fmt.Printf("% X cursor=%d\n", buf, cur)
	// Output: 12 34 56 78 1A 2B cursor=6
}

func ExampleAppendFloat16() {
	buf := make([]byte, 2)
	gutil.AppendFloat16(buf, 0, 1.2345, 1000)

	stored, _ := gutil.ReadInt16(buf, 0)
	value, _ := gutil.ReadFloat16(buf, 0, 1000)
	fmt.Println(stored, value)
	// Output: 1234 1.234
}

func ExampleWriter() {
	w := gutil.NewWriter(make([]byte, 8))
	w.Int32(42)
	w.Float32(-3.5, 100)

	r := gutil.NewReader(w.Bytes())
	fmt.Println(r.Int32(), r.Float32(100), r.Empty())
	// Output: 42 -3.5 true
}

func ExampleNewFrame() {
	f, err := gutil.NewFrame(gutil.WithFrameCompression(format.CompressionS2))
	if err != nil {
		panic(err)
	}
	for i := range 3 {
		f.Int16(int16(i * 10))
	}
	data, err := f.Finish()
	if err != nil {
		panic(err)
	}

	r, err := gutil.OpenFrame(data)
	if err != nil {
		panic(err)
	}
	for !r.Empty() {
		fmt.Print(r.Int16(), " ")
	}
	fmt.Println()
	// Output: 0 10 20
}

func ExampleStrFmt() {
	format := "%d"
	fmt.Println(gutil.StrFmt("%s=%d", "speed", 12))
	fmt.Println(gutil.StrFmt(format, "not a number"))
	// Output:
	// speed=12
	// <StrFmt error>
}

func ExampleLogger_LogFmt() {
	l := gutil.NewLogger(
		gutil.WithOutput(os.Stdout),
		gutil.WithLogClock(func() time.Time {
			return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
		}),
	)
	l.LogFmt("connected to %s", "10.0.0.4")
	// Output: [2024-03-09 14:05:07] connected to 10.0.0.4
}

func ExampleFormatDateTime() {
	t := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	fmt.Println(gutil.FormatDateTime("", t))
	fmt.Println(gutil.FormatDateTime("%d/%m/%y", t))
	// Output:
	// 2024-03-09 14:05:07
	// 09/03/24
}

func ExampleClamp() {
	fmt.Println(gutil.Clamp(15, 10, 0), gutil.Clamp(-3, 10, 0), gutil.Clamp(4, 10, 0))
	// Output: 10 0 4
}

func ExampleMapGetOrDefault() {
	ports := map[string]int{"http": 80}
	fmt.Println(gutil.MapGetOrDefault(ports, "http", 0), gutil.MapGetOrDefault(ports, "ssh", 22))
	// Output: 80 22
}

func ExampleVecIndexOf() {
	sensors := []string{"imu", "gps", "lidar"}
	fmt.Println(gutil.VecIndexOf(sensors, "gps"), gutil.VecContains(sensors, "sonar"))
	// Output: 1 false
}

func ExampleShortestAngularDistance() {
	fmt.Printf("%.4f\n", gutil.ShortestAngularDistance(3, -3))
	fmt.Printf("%.4f\n", gutil.NormalizeAngle(3*math.Pi/2))
	// Output:
	// 0.2832
	// -1.5708
}

func ExampleScheduler_ScheduleRate() {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	start := now
	now = now.Add(4 * time.Millisecond) // work took 4ms

	s, err := gutil.NewScheduler(
		gutil.WithScheduleClock(func() time.Time { return now }),
		gutil.WithSleep(func(d time.Duration) {
			fmt.Println("sleep", d)
			now = now.Add(d)
		}),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(s.ScheduleRate(100, start))
	// Output:
	// sleep 4ms
	// 0.008
}
