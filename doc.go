// Package rng90 is a driver for the MicrochipTech RNG90 device in Go.
//
// The RNG90 is a hardware random-number companion chip reached over a
// two-wire serial bus. It speaks the CryptoAuthentication command
// protocol: a 7-byte command frame with a trailing CRC, a fixed
// per-command execution window, and a length-prefixed response frame.
//
// The bus is injected through the Bus interface, so the driver runs
// unchanged against real hardware (see NewI2CBus) or a simulated
// endpoint in tests.
//
// Copyright (c) 2022 Northvolt AB and the rng90 authors.
//
// # Datasheets
//
// The RNG90 shares its protocol with the rest of the CryptoAuthentication
// family. Find the datasheets in the Trust Platform Design Suite git
// repository.
// https://github.com/MicrochipTech/cryptoauth_trustplatform_designsuite/
package rng90
