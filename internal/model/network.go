package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownNetwork = errors.New("unknown network type")

// NetworkType is the leading byte of every address on that network.
type NetworkType uint8

const (
	MainNet   NetworkType = 0x68
	TestNet   NetworkType = 0x98
	Mijin     NetworkType = 0x60
	MijinTest NetworkType = 0x90
)

var networkNames = map[NetworkType]string{
	MainNet:   "main_net",
	TestNet:   "test_net",
	Mijin:     "mijin",
	MijinTest: "mijin_test",
}

func (n NetworkType) String() string {
	if name, ok := networkNames[n]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02X)", uint8(n))
}

func (n NetworkType) Valid() bool {
	_, ok := networkNames[n]
	return ok
}

func ParseNetworkType(name string) (NetworkType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for n, s := range networkNames {
		if s == name {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}
