// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// KernelAllocator defines a function that allocates a kernel
type KernelAllocator func(d *Desc, sys *System) (Kernel, error)

// ProviderAllocator defines a function that allocates a provider
type ProviderAllocator func(d *Desc, sys *System) (Provider, error)

// NewKernel returns a new kernel from factory
func NewKernel(d *Desc, sys *System) (k Kernel, err error) {
	fcn, ok := kallocators[d.Type]
	if !ok {
		return nil, chk.Err("kernel %q is not available in 'ele' database", d.Type)
	}
	return fcn(d, sys)
}

// NewProvider returns a new provider from factory
func NewProvider(d *Desc, sys *System) (p Provider, err error) {
	fcn, ok := pallocators[d.Type]
	if !ok {
		return nil, chk.Err("provider %q is not available in 'ele' database", d.Type)
	}
	if d.Name == "" {
		return nil, chk.Err("provider %q must have a name", d.Type)
	}
	return fcn(d, sys)
}

// SetKernel sets a new callback function to allocate a kernel
func SetKernel(kernelName string, fcn KernelAllocator) {
	if _, ok := kallocators[kernelName]; ok {
		chk.Panic("cannot set allocator function for %q because kernel name exists already", kernelName)
	}
	kallocators[kernelName] = fcn
}

// SetProvider sets a new callback function to allocate a provider
func SetProvider(providerName string, fcn ProviderAllocator) {
	if _, ok := pallocators[providerName]; ok {
		chk.Panic("cannot set allocator function for %q because provider name exists already", providerName)
	}
	pallocators[providerName] = fcn
}

// Kernels returns the names of registered kernels
func Kernels() (names []string) {
	for name := range kallocators {
		names = append(names, name)
	}
	return
}

// Providers returns the names of registered providers
func Providers() (names []string) {
	for name := range pallocators {
		names = append(names, name)
	}
	return
}

// kallocators holds all kernel allocators
var kallocators = make(map[string]KernelAllocator)

// pallocators holds all provider allocators
var pallocators = make(map[string]ProviderAllocator)
