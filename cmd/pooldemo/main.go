package main

import (
	"fmt"
	"unsafe"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/QuangTung97/objpool"
	"github.com/QuangTung97/objpool/allocator"
)

type demoObject struct {
	a int32
	b int32
}

type config struct {
	Strategy       string `default:"block"`
	NumSlots       uint32 `split_words:"true" default:"64"`
	ChunksPerBlock uint32 `split_words:"true" default:"4"`
	NumObjects     int    `split_words:"true" default:"5"`
	NumIters       int    `split_words:"true" default:"1"`
}

func newAllocator(conf config) (allocator.Allocator, error) {
	elemSize := uint32(unsafe.Sizeof(demoObject{}))
	switch conf.Strategy {
	case "native":
		return allocator.NewNativeAllocator(elemSize), nil
	case "array":
		return allocator.NewArrayAllocator(elemSize, conf.NumSlots), nil
	case "heap":
		return allocator.NewHeapAllocator(elemSize, conf.NumSlots), nil
	case "stack":
		return allocator.NewStackAllocator(elemSize, conf.NumSlots), nil
	case "block":
		return allocator.NewBlockAllocator(elemSize, conf.ChunksPerBlock)
	default:
		return nil, fmt.Errorf("unknown strategy: %q", conf.Strategy)
	}
}

func main() {
	var conf config
	if err := envconfig.Process("pool", &conf); err != nil {
		logrus.WithError(err).Fatal("process config")
	}

	alloc, err := newAllocator(conf)
	if err != nil {
		logrus.WithError(err).Fatal("create allocator")
	}

	pool := objpool.New[demoObject](alloc)
	logger := logrus.WithField("strategy", conf.Strategy)

	for iter := 0; iter < conf.NumIters; iter++ {
		objects := make([]*demoObject, 0, conf.NumObjects)
		for i := 0; i < conf.NumObjects; i++ {
			obj, err := pool.Get()
			if err != nil {
				logger.WithError(err).Fatal("allocate")
			}
			obj.a = int32(i)
			obj.b = int32(iter)

			logger.WithFields(logrus.Fields{
				"index": i,
				"addr":  fmt.Sprintf("%p", obj),
			}).Info("allocate")

			objects = append(objects, obj)
		}

		for i, obj := range objects {
			logger.WithFields(logrus.Fields{
				"index": i,
				"addr":  fmt.Sprintf("%p", obj),
			}).Info("deallocate")
			pool.Deallocate(obj)
		}
	}
}
