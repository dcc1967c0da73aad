// Package vectors produces and checks SSZ conformance vectors for the
// light-client containers: deterministic sample values, their encodings
// and roots, the JSON vector file, and the consensus-spec-tests runner.
package vectors

import (
	"bytes"

	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"

	ssz "github.com/524119574/lcssz"
	"github.com/524119574/lcssz/lightclient"
)

// Names lists the record shapes of the vector file in file order.
var Names = []string{
	"BeaconBlockHeader",
	"ExecutionPayloadHeader",
	"SyncCommittee",
	"SyncAggregate",
	"LightClientBootstrap",
	"LightClientUpdate",
}

// Sample is a named value to generate a vector for.
type Sample struct {
	Name  string
	Value ssz.Typed
}

// Samples returns one deterministic value per name in Names.
func Samples() []Sample {
	return []Sample{
		{Name: "BeaconBlockHeader", Value: SampleBeaconBlockHeader()},
		{Name: "ExecutionPayloadHeader", Value: SampleExecutionPayloadHeader()},
		{Name: "SyncCommittee", Value: SampleSyncCommittee()},
		{Name: "SyncAggregate", Value: SampleSyncAggregate()},
		{Name: "LightClientBootstrap", Value: SampleLightClientBootstrap()},
		{Name: "LightClientUpdate", Value: SampleLightClientUpdate()},
	}
}

func filled(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func branch(first byte, depth int) [][]byte {
	out := make([][]byte, depth)
	for i := range out {
		out[i] = filled(first+byte(i), lightclient.RootLength)
	}
	return out
}

// SampleBeaconBlockHeader returns the BeaconBlockHeader vector value.
func SampleBeaconBlockHeader() *lightclient.BeaconBlockHeader {
	return &lightclient.BeaconBlockHeader{
		Slot:          1234,
		ProposerIndex: 42,
		ParentRoot:    filled(0x11, lightclient.RootLength),
		StateRoot:     filled(0x22, lightclient.RootLength),
		BodyRoot:      filled(0x33, lightclient.RootLength),
	}
}

// SampleExecutionPayloadHeader returns the ExecutionPayloadHeader vector value.
// Callers may modify the result.
func SampleExecutionPayloadHeader() *lightclient.ExecutionPayloadHeader {
	return &lightclient.ExecutionPayloadHeader{
		ParentHash:       filled(0x44, lightclient.RootLength),
		FeeRecipient:     filled(0x55, lightclient.ExecutionAddressLength),
		StateRoot:        filled(0x66, lightclient.RootLength),
		ReceiptsRoot:     filled(0x77, lightclient.RootLength),
		LogsBloom:        filled(0x88, lightclient.BytesPerLogsBloom),
		PrevRandao:       filled(0x99, lightclient.RootLength),
		BlockNumber:      5678,
		GasLimit:         30000000,
		GasUsed:          12345678,
		Timestamp:        1700000000,
		ExtraData:        []byte("light client vectors"),
		BaseFeePerGas:    uint256.NewInt(7000000000),
		BlockHash:        filled(0xaa, lightclient.RootLength),
		TransactionsRoot: filled(0xbb, lightclient.RootLength),
		WithdrawalsRoot:  filled(0xcb, lightclient.RootLength),
		BlobGasUsed:      131072,
		ExcessBlobGas:    262144,
	}
}

// SampleSyncCommittee returns a full committee whose pubkeys differ in their
// first two bytes.
func SampleSyncCommittee() *lightclient.SyncCommittee {
	pubkeys := make([][]byte, lightclient.SyncCommitteeSize)
	for i := range pubkeys {
		pk := filled(0xab, lightclient.BLSPubkeyLength)
		pk[0] = byte(i)
		pk[1] = byte(i >> 8)
		pubkeys[i] = pk
	}
	return &lightclient.SyncCommittee{
		PubKeys:         pubkeys,
		AggregatePubKey: filled(0xba, lightclient.BLSPubkeyLength),
	}
}

// SampleSyncAggregate returns the SyncAggregate vector value.
func SampleSyncAggregate() *lightclient.SyncAggregate {
	return &lightclient.SyncAggregate{
		SyncCommitteeBits:      bitfield.Bitvector512(filled(0xcc, lightclient.SyncCommitteeSize/8)),
		SyncCommitteeSignature: filled(0xdd, lightclient.BLSSignatureLength),
	}
}

// SampleLightClientHeader wraps SampleBeaconBlockHeader and
// SampleExecutionPayloadHeader with an execution branch.
func SampleLightClientHeader() *lightclient.LightClientHeader {
	return &lightclient.LightClientHeader{
		Beacon:          SampleBeaconBlockHeader(),
		Execution:       SampleExecutionPayloadHeader(),
		ExecutionBranch: branch(0xe0, lightclient.ExecutionBranchDepth),
	}
}

// SampleLightClientBootstrap returns the LightClientBootstrap vector value.
func SampleLightClientBootstrap() *lightclient.LightClientBootstrap {
	return &lightclient.LightClientBootstrap{
		Header:                     SampleLightClientHeader(),
		CurrentSyncCommittee:       SampleSyncCommittee(),
		CurrentSyncCommitteeBranch: branch(0xf0, lightclient.SyncCommitteeBranchDepth),
	}
}

// SampleLightClientUpdate returns the LightClientUpdate vector value.
func SampleLightClientUpdate() *lightclient.LightClientUpdate {
	finalized := SampleLightClientHeader()
	finalized.Beacon.Slot = 1184
	finalized.Execution.BlockNumber = 5628
	return &lightclient.LightClientUpdate{
		AttestedHeader:          SampleLightClientHeader(),
		NextSyncCommittee:       SampleSyncCommittee(),
		NextSyncCommitteeBranch: branch(0xf5, lightclient.SyncCommitteeBranchDepth),
		FinalizedHeader:         finalized,
		FinalityBranch:          branch(0xe4, lightclient.FinalityBranchDepth),
		SyncAggregate:           SampleSyncAggregate(),
		SignatureSlot:           1235,
	}
}
