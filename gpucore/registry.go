package gpucore

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// NullDeviceName is the name the discarding device is registered under.
// NewDevice("") returns it.
const NullDeviceName = "null"

// ErrUnknownDevice is returned by NewDevice for a name nothing registered.
var ErrUnknownDevice = errors.New("gpucore: unknown device")

// DeviceFactory returns a fresh device each time it is called.
type DeviceFactory func() Device

// factories maps lowercased device names to their constructors.
var factories = struct {
	sync.RWMutex
	m map[string]DeviceFactory
}{m: make(map[string]DeviceFactory)}

func deviceKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register makes a device available to NewDevice under name, compared
// case-insensitively. Device packages call it from init.
//
// Register panics on an empty name, a nil factory or a name already taken.
func Register(name string, factory DeviceFactory) {
	key := deviceKey(name)
	if key == "" {
		panic("gpucore: Register with empty device name")
	}
	if factory == nil {
		panic("gpucore: Register nil factory for device " + key)
	}

	factories.Lock()
	defer factories.Unlock()
	if _, taken := factories.m[key]; taken {
		panic("gpucore: device " + key + " already registered")
	}
	factories.m[key] = factory
}

// Unregister removes name. Removing an unknown name does nothing.
func Unregister(name string) {
	factories.Lock()
	delete(factories.m, deviceKey(name))
	factories.Unlock()
}

// NewDevice builds the device registered under name. An empty name
// selects the null device. The error for an unknown name wraps
// ErrUnknownDevice and lists what is available; a missing blank import
// of the device package is the usual cause.
func NewDevice(name string) (Device, error) {
	key := deviceKey(name)
	if key == "" {
		key = NullDeviceName
	}

	factories.RLock()
	factory, ok := factories.m[key]
	factories.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownDevice, key, strings.Join(Devices(), ", "))
	}
	return factory(), nil
}

// Devices returns the registered device names, sorted.
func Devices() []string {
	factories.RLock()
	defer factories.RUnlock()
	return slices.Sorted(maps.Keys(factories.m))
}

// IsRegistered reports whether NewDevice(name) would succeed.
func IsRegistered(name string) bool {
	factories.RLock()
	defer factories.RUnlock()
	_, ok := factories.m[deviceKey(name)]
	return ok
}
