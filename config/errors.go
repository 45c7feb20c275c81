package config

import "errors"

// ErrInvalidAlgorithm is returned by Validate when Algorithm names a flow
// algorithm config does not recognize.
var ErrInvalidAlgorithm = errors.New("config: unknown algorithm")

// ErrInvalidWorkers is returned by Validate when Workers is less than 1.
var ErrInvalidWorkers = errors.New("config: workers must be >= 1")

// ErrInvalidMBMCPatience is returned by Validate when MBMCPatience is negative.
var ErrInvalidMBMCPatience = errors.New("config: mbmc_patience must be >= 0")
