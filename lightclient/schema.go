// Package lightclient defines the SSZ schemas of the Ethereum consensus
// light-client containers (Deneb preset, mainnet sizes) and typed Go structs
// bound to them.
package lightclient

import (
	"github.com/524119574/lcssz/types"
)

const (
	// SyncCommitteeSize is the number of validators in a sync committee.
	SyncCommitteeSize = 512
	// BLSPubkeyLength is the size of a compressed BLS public key.
	BLSPubkeyLength = 48
	// BLSSignatureLength is the size of a compressed BLS signature.
	BLSSignatureLength = 96
	// RootLength is the size of a hash tree root.
	RootLength = 32
	// ExecutionAddressLength is the size of an execution-layer address.
	ExecutionAddressLength = 20
	// BytesPerLogsBloom is the size of an execution logs bloom.
	BytesPerLogsBloom = 256
	// MaxExtraDataBytes bounds ExecutionPayloadHeader.extra_data.
	MaxExtraDataBytes = 32
	// VersionLength is the size of a fork version.
	VersionLength = 4

	// ExecutionBranchDepth is floorlog2(EXECUTION_PAYLOAD_GINDEX).
	ExecutionBranchDepth = 4
	// SyncCommitteeBranchDepth is floorlog2 of the current and next sync
	// committee generalized indices.
	SyncCommitteeBranchDepth = 5
	// FinalityBranchDepth is floorlog2(FINALIZED_ROOT_GINDEX).
	FinalityBranchDepth = 6
)

var (
	rootType    = types.ByteVector(RootLength)
	uint64Type  = types.Uint(64)
	pubkeyType  = types.ByteVector(BLSPubkeyLength)
	versionType = types.ByteVector(VersionLength)
)

func branchType(depth uint64) *types.Descriptor {
	return types.Vector(rootType, depth)
}

// BeaconBlockHeaderType is the schema of BeaconBlockHeader.
var BeaconBlockHeaderType = types.Container("BeaconBlockHeader",
	types.F("slot", uint64Type),
	types.F("proposer_index", uint64Type),
	types.F("parent_root", rootType),
	types.F("state_root", rootType),
	types.F("body_root", rootType),
)

// ExecutionPayloadHeaderType is the Deneb schema of ExecutionPayloadHeader.
var ExecutionPayloadHeaderType = types.Container("ExecutionPayloadHeader",
	types.F("parent_hash", rootType),
	types.F("fee_recipient", types.ByteVector(ExecutionAddressLength)),
	types.F("state_root", rootType),
	types.F("receipts_root", rootType),
	types.F("logs_bloom", types.ByteVector(BytesPerLogsBloom)),
	types.F("prev_randao", rootType),
	types.F("block_number", uint64Type),
	types.F("gas_limit", uint64Type),
	types.F("gas_used", uint64Type),
	types.F("timestamp", uint64Type),
	types.F("extra_data", types.ByteList(MaxExtraDataBytes)),
	types.F("base_fee_per_gas", types.Uint(256)),
	types.F("block_hash", rootType),
	types.F("transactions_root", rootType),
	types.F("withdrawals_root", rootType),
	types.F("blob_gas_used", uint64Type),
	types.F("excess_blob_gas", uint64Type),
)

// SyncCommitteeType is the schema of SyncCommittee.
var SyncCommitteeType = types.Container("SyncCommittee",
	types.F("pubkeys", types.Vector(pubkeyType, SyncCommitteeSize)),
	types.F("aggregate_pubkey", pubkeyType),
)

// SyncAggregateType is the schema of SyncAggregate. The Bitvector[512] of
// participation bits is carried as its 64 packed bytes, which encodes and
// Merkleizes identically.
var SyncAggregateType = types.Container("SyncAggregate",
	types.F("sync_committee_bits", types.ByteVector(SyncCommitteeSize/8)),
	types.F("sync_committee_signature", types.ByteVector(BLSSignatureLength)),
)

// LightClientHeaderType is the Deneb schema of LightClientHeader.
var LightClientHeaderType = types.Container("LightClientHeader",
	types.F("beacon", BeaconBlockHeaderType),
	types.F("execution", ExecutionPayloadHeaderType),
	types.F("execution_branch", branchType(ExecutionBranchDepth)),
)

// LightClientBootstrapType is the schema of LightClientBootstrap.
var LightClientBootstrapType = types.Container("LightClientBootstrap",
	types.F("header", LightClientHeaderType),
	types.F("current_sync_committee", SyncCommitteeType),
	types.F("current_sync_committee_branch", branchType(SyncCommitteeBranchDepth)),
)

// LightClientUpdateType is the schema of LightClientUpdate.
var LightClientUpdateType = types.Container("LightClientUpdate",
	types.F("attested_header", LightClientHeaderType),
	types.F("next_sync_committee", SyncCommitteeType),
	types.F("next_sync_committee_branch", branchType(SyncCommitteeBranchDepth)),
	types.F("finalized_header", LightClientHeaderType),
	types.F("finality_branch", branchType(FinalityBranchDepth)),
	types.F("sync_aggregate", SyncAggregateType),
	types.F("signature_slot", uint64Type),
)

// LightClientFinalityUpdateType is the schema of LightClientFinalityUpdate.
var LightClientFinalityUpdateType = types.Container("LightClientFinalityUpdate",
	types.F("attested_header", LightClientHeaderType),
	types.F("finalized_header", LightClientHeaderType),
	types.F("finality_branch", branchType(FinalityBranchDepth)),
	types.F("sync_aggregate", SyncAggregateType),
	types.F("signature_slot", uint64Type),
)

// LightClientOptimisticUpdateType is the schema of LightClientOptimisticUpdate.
var LightClientOptimisticUpdateType = types.Container("LightClientOptimisticUpdate",
	types.F("attested_header", LightClientHeaderType),
	types.F("sync_aggregate", SyncAggregateType),
	types.F("signature_slot", uint64Type),
)

// ForkDataType is the schema of ForkData, used to derive signature domains.
var ForkDataType = types.Container("ForkData",
	types.F("current_version", versionType),
	types.F("genesis_validators_root", rootType),
)

// SigningDataType is the schema of SigningData.
var SigningDataType = types.Container("SigningData",
	types.F("object_root", rootType),
	types.F("domain", rootType),
)

// Schemas maps container names to their descriptors.
var Schemas = map[string]*types.Descriptor{
	"BeaconBlockHeader":           BeaconBlockHeaderType,
	"ExecutionPayloadHeader":      ExecutionPayloadHeaderType,
	"SyncCommittee":               SyncCommitteeType,
	"SyncAggregate":               SyncAggregateType,
	"LightClientHeader":           LightClientHeaderType,
	"LightClientBootstrap":        LightClientBootstrapType,
	"LightClientUpdate":           LightClientUpdateType,
	"LightClientFinalityUpdate":   LightClientFinalityUpdateType,
	"LightClientOptimisticUpdate": LightClientOptimisticUpdateType,
	"ForkData":                    ForkDataType,
	"SigningData":                 SigningDataType,
}
