package lightclient

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/holiman/uint256"
	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/524119574/lcssz/types"
)

func filled(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func testBranch(first byte, depth int) [][]byte {
	out := make([][]byte, depth)
	for i := range out {
		out[i] = filled(first+byte(i), RootLength)
	}
	return out
}

func zeroBranch(depth int) [][]byte {
	out := make([][]byte, depth)
	for i := range out {
		out[i] = make([]byte, RootLength)
	}
	return out
}

func testBeaconHeader(slot uint64) *BeaconBlockHeader {
	return &BeaconBlockHeader{
		Slot:          slot,
		ProposerIndex: 7,
		ParentRoot:    filled(0x01, RootLength),
		StateRoot:     filled(0x02, RootLength),
		BodyRoot:      filled(0x03, RootLength),
	}
}

func testExecutionHeader() *ExecutionPayloadHeader {
	return &ExecutionPayloadHeader{
		ParentHash:       filled(0x10, RootLength),
		FeeRecipient:     filled(0x11, ExecutionAddressLength),
		StateRoot:        filled(0x12, RootLength),
		ReceiptsRoot:     filled(0x13, RootLength),
		LogsBloom:        filled(0x14, BytesPerLogsBloom),
		PrevRandao:       filled(0x15, RootLength),
		BlockNumber:      100,
		GasLimit:         30000000,
		GasUsed:          21000,
		Timestamp:        1700000000,
		ExtraData:        []byte("graffiti"),
		BaseFeePerGas:    uint256.NewInt(1000000000),
		BlockHash:        filled(0x16, RootLength),
		TransactionsRoot: filled(0x17, RootLength),
		WithdrawalsRoot:  filled(0x18, RootLength),
		BlobGasUsed:      131072,
		ExcessBlobGas:    0,
	}
}

func testLightClientHeader(slot uint64) *LightClientHeader {
	return &LightClientHeader{
		Beacon:          testBeaconHeader(slot),
		Execution:       testExecutionHeader(),
		ExecutionBranch: testBranch(0x20, ExecutionBranchDepth),
	}
}

func testSyncCommittee() *SyncCommittee {
	pubkeys := make([][]byte, SyncCommitteeSize)
	for i := range pubkeys {
		pk := filled(0x30, BLSPubkeyLength)
		pk[0], pk[1] = byte(i), byte(i>>8)
		pubkeys[i] = pk
	}
	return &SyncCommittee{PubKeys: pubkeys, AggregatePubKey: filled(0x31, BLSPubkeyLength)}
}

func testSyncAggregate() *SyncAggregate {
	bits := bitfield.NewBitvector512()
	bits.SetBitAt(0, true)
	bits.SetBitAt(5, true)
	bits.SetBitAt(511, true)
	return &SyncAggregate{SyncCommitteeBits: bits, SyncCommitteeSignature: filled(0x40, BLSSignatureLength)}
}

type roundTripper interface {
	typedValue
	MarshalSSZ() ([]byte, error)
	UnmarshalSSZ([]byte) error
	HashTreeRoot() ([32]byte, error)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value roundTripper
		empty roundTripper
	}{
		{name: "BeaconBlockHeader", value: testBeaconHeader(9), empty: &BeaconBlockHeader{}},
		{name: "ExecutionPayloadHeader", value: testExecutionHeader(), empty: &ExecutionPayloadHeader{}},
		{name: "SyncCommittee", value: testSyncCommittee(), empty: &SyncCommittee{}},
		{name: "SyncAggregate", value: testSyncAggregate(), empty: &SyncAggregate{}},
		{name: "LightClientHeader", value: testLightClientHeader(9), empty: &LightClientHeader{}},
		{
			name: "LightClientBootstrap",
			value: &LightClientBootstrap{
				Header:                     testLightClientHeader(9),
				CurrentSyncCommittee:       testSyncCommittee(),
				CurrentSyncCommitteeBranch: testBranch(0x50, SyncCommitteeBranchDepth),
			},
			empty: &LightClientBootstrap{},
		},
		{
			name: "LightClientUpdate",
			value: &LightClientUpdate{
				AttestedHeader:          testLightClientHeader(10),
				NextSyncCommittee:       testSyncCommittee(),
				NextSyncCommitteeBranch: testBranch(0x60, SyncCommitteeBranchDepth),
				FinalizedHeader:         testLightClientHeader(8),
				FinalityBranch:          testBranch(0x70, FinalityBranchDepth),
				SyncAggregate:           testSyncAggregate(),
				SignatureSlot:           11,
			},
			empty: &LightClientUpdate{},
		},
		{
			name: "LightClientFinalityUpdate",
			value: &LightClientFinalityUpdate{
				AttestedHeader:  testLightClientHeader(10),
				FinalizedHeader: testLightClientHeader(8),
				FinalityBranch:  testBranch(0x70, FinalityBranchDepth),
				SyncAggregate:   testSyncAggregate(),
				SignatureSlot:   11,
			},
			empty: &LightClientFinalityUpdate{},
		},
		{
			name: "LightClientOptimisticUpdate",
			value: &LightClientOptimisticUpdate{
				AttestedHeader: testLightClientHeader(10),
				SyncAggregate:  testSyncAggregate(),
				SignatureSlot:  11,
			},
			empty: &LightClientOptimisticUpdate{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := tt.value.MarshalSSZ()
			if err != nil {
				t.Fatal(err)
			}
			if err := tt.empty.UnmarshalSSZ(enc); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(tt.empty, tt.value) {
				t.Errorf("Unmarshaled value differs: %+v", tt.empty)
			}
			again, err := tt.empty.MarshalSSZ()
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(enc, again) {
				t.Error("Re-encoding differs")
			}
			r1, err := tt.value.HashTreeRoot()
			if err != nil {
				t.Fatal(err)
			}
			r2, err := tt.empty.HashTreeRoot()
			if err != nil {
				t.Fatal(err)
			}
			if r1 != r2 {
				t.Errorf("Roots differ: %#x != %#x", r1, r2)
			}
		})
	}
}

func TestFixedSizes(t *testing.T) {
	tests := []struct {
		d    *types.Descriptor
		want uint64
	}{
		{d: BeaconBlockHeaderType, want: 112},
		{d: SyncAggregateType, want: 160},
		{d: SyncCommitteeType, want: SyncCommitteeSize*BLSPubkeyLength + BLSPubkeyLength},
		{d: ForkDataType, want: 36},
		{d: SigningDataType, want: 64},
	}
	for _, tt := range tests {
		if !tt.d.IsFixed() || tt.d.FixedSize() != tt.want {
			t.Errorf("%s: fixed=%v size=%d, want %d", tt.d.Name(), tt.d.IsFixed(), tt.d.FixedSize(), tt.want)
		}
	}
	for _, d := range []*types.Descriptor{ExecutionPayloadHeaderType, LightClientHeaderType, LightClientUpdateType} {
		if d.IsFixed() {
			t.Errorf("%s should be variable-size", d.Name())
		}
	}
}

func TestSizeSSZ(t *testing.T) {
	a := testSyncAggregate()
	if a.SizeSSZ() != 160 {
		t.Errorf("SizeSSZ() = %d, want 160", a.SizeSSZ())
	}
	h := testExecutionHeader()
	enc, err := h.MarshalSSZ()
	if err != nil {
		t.Fatal(err)
	}
	if h.SizeSSZ() != len(enc) {
		t.Errorf("SizeSSZ() = %d, encoding is %d bytes", h.SizeSSZ(), len(enc))
	}
	prefix := []byte{0xde, 0xad}
	out, err := h.MarshalSSZTo(prefix)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out[:2], prefix) || !bytes.Equal(out[2:], enc) {
		t.Error("MarshalSSZTo did not append to dst")
	}
}

func TestInvalidFieldLengths(t *testing.T) {
	h := testBeaconHeader(1)
	h.StateRoot = h.StateRoot[:31]
	if _, err := h.MarshalSSZ(); !errors.Is(err, types.ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, received %v", err)
	}
	e := testExecutionHeader()
	e.ExtraData = filled(0x01, MaxExtraDataBytes+1)
	if _, err := e.MarshalSSZ(); !errors.Is(err, types.ErrCapacityExceeded) {
		t.Errorf("Expected ErrCapacityExceeded, received %v", err)
	}
	u := &LightClientUpdate{FinalityBranch: testBranch(0x01, FinalityBranchDepth-1)}
	if _, err := u.MarshalSSZ(); !errors.Is(err, types.ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, received %v", err)
	}
}

func TestNilNestedEncodesAsDefault(t *testing.T) {
	u := &LightClientOptimisticUpdate{SignatureSlot: 3}
	enc, err := u.MarshalSSZ()
	if err != nil {
		t.Fatal(err)
	}
	zero := &LightClientOptimisticUpdate{
		AttestedHeader: &LightClientHeader{
			Beacon: &BeaconBlockHeader{
				ParentRoot: make([]byte, RootLength),
				StateRoot:  make([]byte, RootLength),
				BodyRoot:   make([]byte, RootLength),
			},
			Execution: &ExecutionPayloadHeader{
				ParentHash:       make([]byte, RootLength),
				FeeRecipient:     make([]byte, ExecutionAddressLength),
				StateRoot:        make([]byte, RootLength),
				ReceiptsRoot:     make([]byte, RootLength),
				LogsBloom:        make([]byte, BytesPerLogsBloom),
				PrevRandao:       make([]byte, RootLength),
				BlockHash:        make([]byte, RootLength),
				TransactionsRoot: make([]byte, RootLength),
				WithdrawalsRoot:  make([]byte, RootLength),
				BaseFeePerGas:    new(uint256.Int),
			},
			ExecutionBranch: zeroBranch(ExecutionBranchDepth),
		},
		SyncAggregate: &SyncAggregate{
			SyncCommitteeBits:      bitfield.NewBitvector512(),
			SyncCommitteeSignature: make([]byte, BLSSignatureLength),
		},
		SignatureSlot: 3,
	}
	want, err := zero.MarshalSSZ()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, want) {
		t.Error("Nil nested containers did not encode as their default value")
	}
}

func TestNilBaseFeeRejected(t *testing.T) {
	e := testExecutionHeader()
	e.BaseFeePerGas = nil
	if _, err := e.MarshalSSZ(); !errors.Is(err, types.ErrUnsupportedValue) {
		t.Errorf("Expected ErrUnsupportedValue, received %v", err)
	}
	if _, err := e.HashTreeRoot(); !errors.Is(err, types.ErrUnsupportedValue) {
		t.Errorf("Expected ErrUnsupportedValue, received %v", err)
	}
}

func TestUnmarshalRejectsTrailingBytes(t *testing.T) {
	enc, err := testBeaconHeader(1).MarshalSSZ()
	if err != nil {
		t.Fatal(err)
	}
	var h BeaconBlockHeader
	if err := h.UnmarshalSSZ(append(enc, 0)); !errors.Is(err, types.ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, received %v", err)
	}
	if err := h.UnmarshalSSZ(enc[:100]); !errors.Is(err, types.ErrTruncatedInput) {
		t.Errorf("Expected ErrTruncatedInput, received %v", err)
	}
}

func TestParticipants(t *testing.T) {
	a := testSyncAggregate()
	if got := a.ParticipantCount(); got != 3 {
		t.Errorf("ParticipantCount() = %d, want 3", got)
	}
	committee := testSyncCommittee()
	got := a.Participants(committee)
	want := [][]byte{committee.PubKeys[0], committee.PubKeys[5], committee.PubKeys[511]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Participants() returned %d keys", len(got))
	}
	if a.Participants(nil) != nil {
		t.Error("Participants(nil) should be nil")
	}
	if (&SyncAggregate{}).ParticipantCount() != 0 {
		t.Error("Empty aggregate should have no participants")
	}
}

func TestSigningRoots(t *testing.T) {
	version := [4]byte{0x04, 0x00, 0x00, 0x00}
	var gvr [32]byte
	copy(gvr[:], filled(0x4b, 32))

	forkDataRoot, err := ComputeForkDataRoot(version, gvr)
	if err != nil {
		t.Fatal(err)
	}
	var versionChunk [32]byte
	copy(versionChunk[:], version[:])
	if want := sha256.Sum256(append(versionChunk[:], gvr[:]...)); forkDataRoot != want {
		t.Errorf("ComputeForkDataRoot() = %#x, want %#x", forkDataRoot, want)
	}

	domain, err := ComputeDomain(DomainSyncCommittee, version, gvr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(domain[:4], DomainSyncCommittee[:]) || !bytes.Equal(domain[4:], forkDataRoot[:28]) {
		t.Errorf("ComputeDomain() = %#x", domain)
	}

	header := testBeaconHeader(42)
	headerRoot, err := header.HashTreeRoot()
	if err != nil {
		t.Fatal(err)
	}
	signingRoot, err := ComputeSigningRoot(headerRoot, domain)
	if err != nil {
		t.Fatal(err)
	}
	if want := sha256.Sum256(append(headerRoot[:], domain[:]...)); signingRoot != want {
		t.Errorf("ComputeSigningRoot() = %#x, want %#x", signingRoot, want)
	}
	got, err := SyncCommitteeSigningRoot(header, version, gvr)
	if err != nil {
		t.Fatal(err)
	}
	if got != signingRoot {
		t.Errorf("SyncCommitteeSigningRoot() = %#x, want %#x", got, signingRoot)
	}
	if _, err := SyncCommitteeSigningRoot(nil, version, gvr); err == nil {
		t.Error("Expected error for nil header")
	}
}

func TestSchemas(t *testing.T) {
	for name, d := range Schemas {
		if d.Name() != name {
			t.Errorf("Schemas[%q] is %s", name, d.Name())
		}
	}
	if len(Schemas) != 11 {
		t.Errorf("len(Schemas) = %d, want 11", len(Schemas))
	}
}
