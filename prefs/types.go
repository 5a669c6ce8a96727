// This file is part of Gopherodyssey.
//
// Gopherodyssey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherodyssey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherodyssey.  If not, see <https://www.gnu.org/licenses/>.


package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// shared storage for the concrete preference types. the check function, if
// present, validates the value before it is stored.
type typed[T bool | int | string] struct {
	crit     sync.RWMutex
	value    T
	check    func(T) error
	hookPost func(value Value) error
}

func (p *typed[T]) set(nv T) error {
	p.crit.Lock()
	if p.check != nil {
		if err := p.check(nv); err != nil {
			p.crit.Unlock()
			return err
		}
	}
	p.value = nv
	hook := p.hookPost
	p.crit.Unlock()

	if hook != nil {
		return hook(nv)
	}
	return nil
}

func (p *typed[T]) get() T {
	p.crit.RLock()
	defer p.crit.RUnlock()
	return p.value
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. The callback is run even if the value hasn't changed.
func (p *typed[T]) SetHookPost(f func(value Value) error) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	typed[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	nv, err := parseBool(v)
	if err != nil {
		return err
	}
	return p.set(nv)
}

func parseBool(v Value) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true"), nil
	}
	return false, fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.get()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	typed[string]
}

func (p *String) String() string {
	return p.get()
}

// Set new value to String type. New value must be of type string.
func (p *String) Set(v Value) error {
	nv, err := parseString(v)
	if err != nil {
		return err
	}
	return p.set(nv)
}

func parseString(v Value) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("prefs: cannot convert %T to prefs.String", v)
	}
	return strings.TrimSpace(s), nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.get()
}

// Reset sets the string value to the empty string. The empty string is
// always accepted, even when SetOptions() has been used.
func (p *String) Reset() error {
	p.crit.Lock()
	p.value = ""
	p.crit.Unlock()
	return nil
}

// SetOptions restricts the value to one of the listed strings. Comparison
// is case insensitive and the value is stored as listed.
func (p *String) SetOptions(options ...string) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.check = func(v string) error {
		for _, o := range options {
			if strings.EqualFold(o, v) {
				return nil
			}
		}
		return fmt.Errorf("prefs: %q is not one of %s", v, strings.Join(options, ", "))
	}
}

// Int implements an integer type in the prefs system.
type Int struct {
	typed[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.get())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	nv, err := parseInt(v)
	if err != nil {
		return err
	}
	return p.set(nv)
}

func parseInt(v Value) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("prefs: cannot convert %q to prefs.Int", v)
		}
		return n, nil
	}
	return 0, fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.get()
}

// Reset sets the int value to zero, whether or not zero is in range.
func (p *Int) Reset() error {
	p.crit.Lock()
	p.value = 0
	p.crit.Unlock()
	return nil
}

// SetRange restricts the value to the inclusive range lo to hi.
func (p *Int) SetRange(lo, hi int) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.check = func(v int) error {
		if v < lo || v > hi {
			return fmt.Errorf("prefs: %d is outside the range %d to %d", v, lo, hi)
		}
		return nil
	}
}
