/*
 * effsdcli - Ver3/Ver4 Mii color bridge command-line tool.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	getopt "github.com/pborman/getopt/v2"

	"github.com/nx-mii/miibridge/effsd"
	"github.com/nx-mii/miibridge/effsd/ver3"
	"github.com/nx-mii/miibridge/effsd/ver4"
	logger "github.com/nx-mii/miibridge/util/logger"
)

var log *slog.Logger

func usage(prog string) {
	fmt.Fprintf(os.Stderr,
		"Usage:\n"+
			"  %s pack <in.mii> <out.mii> <faceline> <hair> <eye> <eyebrow> <mouth> <beard> <glassColor> <glassType>\n"+
			"  %s unpack <in.mii>\n"+
			"\n"+
			"Either file may be \"-\" for stdin/stdout.\n",
		prog, prog)
}

func main() {
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	var file *os.File
	if optLogFile != nil && *optLogFile != "" {
		var err error
		file, err = os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log file: %s\n", *optLogFile)
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	log = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, new(bool)))
	slog.SetDefault(log)

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) < 1 {
		usage(os.Args[0])
		os.Exit(1)
	}

	var err error
	switch args[0] {
	case "pack":
		err = runPack(args[1:])
	case "unpack":
		err = runUnpack(args[1:])
	default:
		usage(os.Args[0])
		os.Exit(1)
	}
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func runPack(args []string) error {
	if len(args) != 10 {
		usage(os.Args[0])
		os.Exit(1)
	}

	rec, err := readRecord(args[0])
	if err != nil {
		return err
	}

	fields, err := parseFields(args[2:])
	if err != nil {
		return err
	}
	if err := validateFields(fields); err != nil {
		return err
	}

	effsd.Pack(fields, rec)

	return writeRecord(args[1], rec)
}

func runUnpack(args []string) error {
	if len(args) != 1 {
		usage(os.Args[0])
		os.Exit(1)
	}

	rec, err := readRecord(args[0])
	if err != nil {
		return err
	}

	out := effsd.Unpack(rec)
	fmt.Printf("Faceline Color: %d\n", out.FacelineColor)
	fmt.Printf("Hair Color:     %d\n", out.HairColor)
	fmt.Printf("Eye Color:      %d\n", out.EyeColor)
	fmt.Printf("Eyebrow Color:  %d\n", out.EyebrowColor)
	fmt.Printf("Mouth Color:    %d\n", out.MouthColor)
	fmt.Printf("Beard Color:    %d\n", out.BeardColor)
	fmt.Printf("Glass Color:    %d\n", out.GlassColor)
	fmt.Printf("Glass Type:     %d\n", out.GlassType)
	return nil
}

func readRecord(path string) (*ver3.Record, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	buf := make([]byte, ver3.Size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read %s: file too small or truncated", path)
	}
	return ver3.NewFromBytes(buf)
}

func writeRecord(path string, rec *ver3.Record) error {
	var w io.Writer
	if path == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(rec.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func parseFields(args []string) (ver4.Fields, error) {
	v := make([]uint8, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 0 || n > 255 {
			return ver4.Fields{}, fmt.Errorf("invalid color value %q", a)
		}
		v[i] = uint8(n)
	}
	return ver4.Fields{
		FacelineColor: v[0],
		HairColor:     v[1],
		EyeColor:      v[2],
		EyebrowColor:  v[3],
		MouthColor:    v[4],
		BeardColor:    v[5],
		GlassColor:    v[6],
		GlassType:     v[7],
	}, nil
}

func validateFields(f ver4.Fields) error {
	if f.FacelineColor >= 10 {
		return fmt.Errorf("facelineColor out of range (0-9)")
	}
	if f.HairColor >= 100 {
		return fmt.Errorf("hairColor out of range (0-99)")
	}
	if f.EyeColor >= 100 {
		return fmt.Errorf("eyeColor out of range (0-99)")
	}
	if f.EyebrowColor >= 100 {
		return fmt.Errorf("eyebrowColor out of range (0-99)")
	}
	if f.MouthColor >= 100 {
		return fmt.Errorf("mouthColor out of range (0-99)")
	}
	if f.BeardColor >= 100 {
		return fmt.Errorf("beardColor out of range (0-99)")
	}
	if f.GlassColor >= 100 {
		return fmt.Errorf("glassColor out of range (0-99)")
	}
	if f.GlassType >= 20 {
		return fmt.Errorf("glassType out of range (0-19)")
	}
	return nil
}
