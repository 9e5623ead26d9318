// Package config provides application configuration for the fitcli tools.
//
// Configuration is resolved in three layers, later layers winning:
//
//  1. Built-in defaults (Default)
//  2. An optional fitcli.yaml file in the working directory
//  3. Environment variables with the FITCLI prefix
//     (e.g. FITCLI_PATHS_INPUT_DIR, FITCLI_LLM_MODEL)
//
// The loaded configuration is validated with go-playground/validator before
// it is handed to callers; an invalid configuration fails Load rather than
// surfacing later in the batch run.
package config
