package compoundcache

import (
	"errors"
	"reflect"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/service/cache"
)

type impl struct {
	layers []cache.Service
}

// NewCompoundCache stacks cache services with their own ttl and prefix,
// fastest first.
func NewCompoundCache(layers []cache.Service) cache.Service {
	return &impl{
		layers: layers,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter cache.OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	} else if !errors.Is(err, cache.ErrNotFound) {
		c.WithField("err", err).WithField("key", key).Error("Get failed")
		return err
	}

	val, err := getter()
	if err != nil {
		return err
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithField("err", err).WithField("key", key).Error("Set failed")
	}

	reflect.ValueOf(container).Elem().Set(reflect.ValueOf(val).Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	for idx, lyr := range im.layers {
		err := lyr.Get(c, key, container)
		if errors.Is(err, cache.ErrNotFound) {
			continue
		} else if err != nil {
			return err
		}

		for _, front := range im.layers[:idx] {
			if err := front.Set(c, key, container); err != nil {
				return err
			}
		}
		return nil
	}
	return cache.ErrNotFound
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
