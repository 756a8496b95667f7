// plumbd serves path queries, transforms, and grouping over JSON-RPC,
// on stdio by default or on a TCP listener with -listen.
package main

import (
	"context"
	"flag"
	"io"
	"net"
	"os"

	"go.uber.org/zap"

	"github.com/pdum/plumb/service"
)

func main() {
	listen := flag.String("listen", "", "tcp address to listen on (default: serve stdio)")
	devLog := flag.Bool("devlog", false, "human-readable logging")
	flag.Parse()

	var (
		log *zap.Logger
		err error
	)
	if *devLog {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	srv := service.New(log)
	if *listen == "" {
		err := srv.ServeStream(ctx, &stdio{in: os.Stdin, out: os.Stdout})
		if err != nil && err != io.EOF {
			log.Error("serve", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	l, err := net.Listen("tcp", *listen)
	if err != nil {
		log.Fatal("listen", zap.Error(err))
	}
	log.Info("listening", zap.String("addr", l.Addr().String()))
	for {
		conn, err := l.Accept()
		if err != nil {
			log.Error("accept", zap.Error(err))
			return
		}
		go func() {
			if err := srv.ServeStream(ctx, conn); err != nil && err != io.EOF {
				log.Warn("connection", zap.Error(err))
			}
		}()
	}
}

type stdio struct {
	in  io.Reader
	out io.Writer
}

func (s *stdio) Read(p []byte) (int, error) {
	return s.in.Read(p)
}

func (s *stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *stdio) Close() error {
	return nil
}
