//go:build wasm

package main

//go:wasmexport contract_init
func exportContractInit(payload *string) *string { return ContractInit(payload) }

//go:wasmexport update_answer
func exportUpdateAnswer(payload *string) *string { return UpdateAnswer(payload) }

//go:wasmexport update_round_data
func exportUpdateRoundData(payload *string) *string { return UpdateRoundData(payload) }

//go:wasmexport latest_round_data
func exportLatestRoundData(payload *string) *string { return LatestRoundData(payload) }

//go:wasmexport get_round_data
func exportGetRoundData(payload *string) *string { return GetRoundData(payload) }

//go:wasmexport decimals
func exportDecimals(payload *string) *string { return Decimals(payload) }

//go:wasmexport description
func exportDescription(payload *string) *string { return Description(payload) }

//go:wasmexport version
func exportVersion(payload *string) *string { return Version(payload) }
