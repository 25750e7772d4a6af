package mkvio

import (
	"github.com/deepch/ebml/format/ebml"
	"github.com/deepch/ebml/format/ebml/ebmlio"
)

const (
	ElementTypeUnknown uint8 = 0x0
	ElementTypeMaster  uint8 = 0x1
	ElementTypeUint    uint8 = 0x2
	ElementTypeInt     uint8 = 0x3
	ElementTypeString  uint8 = 0x4
	ElementTypeUnicode uint8 = 0x5
	ElementTypeBinary  uint8 = 0x6
	ElementTypeFloat   uint8 = 0x7
	ElementTypeDate    uint8 = 0x8
)

// ElementRegister contains the ID, type and name of a standard
// EBML/Matroska/WebM element.
type ElementRegister struct {
	ID   uint64
	Type uint8
	Name string
}

var ElementUnknown = ElementRegister{0x0, ElementTypeUnknown, "Unknown"}

var registers = []ElementRegister{
	{ebml.EBML, ElementTypeMaster, "EBML"},
	{ebml.EBMLVersion, ElementTypeUint, "EBMLVersion"},
	{ebml.EBMLReadVersion, ElementTypeUint, "EBMLReadVersion"},
	{ebml.EBMLMaxIDLength, ElementTypeUint, "EBMLMaxIDLength"},
	{ebml.EBMLMaxSizeLength, ElementTypeUint, "EBMLMaxSizeLength"},
	{ebml.DocType, ElementTypeString, "DocType"},
	{ebml.DocTypeVersion, ElementTypeUint, "DocTypeVersion"},
	{ebml.DocTypeReadVersion, ElementTypeUint, "DocTypeReadVersion"},
	{ebml.Void, ElementTypeBinary, "Void"},
	{ebml.CRC32, ElementTypeBinary, "CRC-32"},
	{Segment, ElementTypeMaster, "Segment"},
	{SeekHead, ElementTypeMaster, "SeekHead"},
	{Seek, ElementTypeMaster, "Seek"},
	{SeekID, ElementTypeBinary, "SeekID"},
	{SeekPosition, ElementTypeUint, "SeekPosition"},
	{Info, ElementTypeMaster, "Info"},
	{SegmentUID, ElementTypeBinary, "SegmentUID"},
	{SegmentFilename, ElementTypeUnicode, "SegmentFilename"},
	{PrevUID, ElementTypeBinary, "PrevUID"},
	{PrevFilename, ElementTypeUnicode, "PrevFilename"},
	{NextUID, ElementTypeBinary, "NextUID"},
	{NextFilename, ElementTypeUnicode, "NextFilename"},
	{SegmentFamily, ElementTypeBinary, "SegmentFamily"},
	{ChapterTranslate, ElementTypeMaster, "ChapterTranslate"},
	{ChapterTranslateEditionUID, ElementTypeUint, "ChapterTranslateEditionUID"},
	{ChapterTranslateCodec, ElementTypeUint, "ChapterTranslateCodec"},
	{ChapterTranslateID, ElementTypeBinary, "ChapterTranslateID"},
	{TimecodeScale, ElementTypeUint, "TimecodeScale"},
	{Duration, ElementTypeFloat, "Duration"},
	{DateUTC, ElementTypeDate, "DateUTC"},
	{Title, ElementTypeUnicode, "Title"},
	{MuxingApp, ElementTypeUnicode, "MuxingApp"},
	{WritingApp, ElementTypeUnicode, "WritingApp"},
	{Cluster, ElementTypeMaster, "Cluster"},
	{Timecode, ElementTypeUint, "Timecode"},
	{SilentTracks, ElementTypeMaster, "SilentTracks"},
	{SilentTrackNumber, ElementTypeUint, "SilentTrackNumber"},
	{Position, ElementTypeUint, "Position"},
	{PrevSize, ElementTypeUint, "PrevSize"},
	{SimpleBlock, ElementTypeBinary, "SimpleBlock"},
	{BlockGroup, ElementTypeMaster, "BlockGroup"},
	{Block, ElementTypeBinary, "Block"},
	{BlockAdditions, ElementTypeMaster, "BlockAdditions"},
	{BlockMore, ElementTypeMaster, "BlockMore"},
	{BlockAddID, ElementTypeUint, "BlockAddID"},
	{BlockAdditional, ElementTypeBinary, "BlockAdditional"},
	{BlockDuration, ElementTypeUint, "BlockDuration"},
	{ReferencePriority, ElementTypeUint, "ReferencePriority"},
	{ReferenceBlock, ElementTypeInt, "ReferenceBlock"},
	{CodecState, ElementTypeBinary, "CodecState"},
	{DiscardPadding, ElementTypeInt, "DiscardPadding"},
	{Slices, ElementTypeMaster, "Slices"},
	{TimeSlice, ElementTypeMaster, "TimeSlice"},
	{LaceNumber, ElementTypeUint, "LaceNumber"},
	{Tracks, ElementTypeMaster, "Tracks"},
	{TrackEntry, ElementTypeMaster, "TrackEntry"},
	{TrackNumber, ElementTypeUint, "TrackNumber"},
	{TrackUID, ElementTypeUint, "TrackUID"},
	{TrackType, ElementTypeUint, "TrackType"},
	{FlagEnabled, ElementTypeUint, "FlagEnabled"},
	{FlagDefault, ElementTypeUint, "FlagDefault"},
	{FlagForced, ElementTypeUint, "FlagForced"},
	{FlagLacing, ElementTypeUint, "FlagLacing"},
	{MinCache, ElementTypeUint, "MinCache"},
	{MaxCache, ElementTypeUint, "MaxCache"},
	{DefaultDuration, ElementTypeUint, "DefaultDuration"},
	{DefaultDecodedFieldDuration, ElementTypeUint, "DefaultDecodedFieldDuration"},
	{MaxBlockAdditionID, ElementTypeUint, "MaxBlockAdditionID"},
	{Name, ElementTypeUnicode, "Name"},
	{Language, ElementTypeString, "Language"},
	{CodecID, ElementTypeString, "CodecID"},
	{CodecPrivate, ElementTypeBinary, "CodecPrivate"},
	{CodecName, ElementTypeUnicode, "CodecName"},
	{AttachmentLink, ElementTypeUint, "AttachmentLink"},
	{CodecDecodeAll, ElementTypeUint, "CodecDecodeAll"},
	{TrackOverlay, ElementTypeUint, "TrackOverlay"},
	{CodecDelay, ElementTypeUint, "CodecDelay"},
	{SeekPreRoll, ElementTypeUint, "SeekPreRoll"},
	{TrackTranslate, ElementTypeMaster, "TrackTranslate"},
	{TrackTranslateEditionUID, ElementTypeUint, "TrackTranslateEditionUID"},
	{TrackTranslateCodec, ElementTypeUint, "TrackTranslateCodec"},
	{TrackTranslateTrackID, ElementTypeBinary, "TrackTranslateTrackID"},
	{Video, ElementTypeMaster, "Video"},
	{FlagInterlaced, ElementTypeUint, "FlagInterlaced"},
	{StereoMode, ElementTypeUint, "StereoMode"},
	{AlphaMode, ElementTypeUint, "AlphaMode"},
	{PixelWidth, ElementTypeUint, "PixelWidth"},
	{PixelHeight, ElementTypeUint, "PixelHeight"},
	{PixelCropBottom, ElementTypeUint, "PixelCropBottom"},
	{PixelCropTop, ElementTypeUint, "PixelCropTop"},
	{PixelCropLeft, ElementTypeUint, "PixelCropLeft"},
	{PixelCropRight, ElementTypeUint, "PixelCropRight"},
	{DisplayWidth, ElementTypeUint, "DisplayWidth"},
	{DisplayHeight, ElementTypeUint, "DisplayHeight"},
	{DisplayUnit, ElementTypeUint, "DisplayUnit"},
	{AspectRatioType, ElementTypeUint, "AspectRatioType"},
	{ColourSpace, ElementTypeBinary, "ColourSpace"},
	{Audio, ElementTypeMaster, "Audio"},
	{SamplingFrequency, ElementTypeFloat, "SamplingFrequency"},
	{OutputSamplingFrequency, ElementTypeFloat, "OutputSamplingFrequency"},
	{Channels, ElementTypeUint, "Channels"},
	{BitDepth, ElementTypeUint, "BitDepth"},
	{TrackOperation, ElementTypeMaster, "TrackOperation"},
	{TrackCombinePlanes, ElementTypeMaster, "TrackCombinePlanes"},
	{TrackPlane, ElementTypeMaster, "TrackPlane"},
	{TrackPlaneUID, ElementTypeUint, "TrackPlaneUID"},
	{TrackPlaneType, ElementTypeUint, "TrackPlaneType"},
	{TrackJoinBlocks, ElementTypeMaster, "TrackJoinBlocks"},
	{TrackJoinUID, ElementTypeUint, "TrackJoinUID"},
	{ContentEncodings, ElementTypeMaster, "ContentEncodings"},
	{ContentEncoding, ElementTypeMaster, "ContentEncoding"},
	{ContentEncodingOrder, ElementTypeUint, "ContentEncodingOrder"},
	{ContentEncodingScope, ElementTypeUint, "ContentEncodingScope"},
	{ContentEncodingType, ElementTypeUint, "ContentEncodingType"},
	{ContentCompression, ElementTypeMaster, "ContentCompression"},
	{ContentCompAlgo, ElementTypeUint, "ContentCompAlgo"},
	{ContentCompSettings, ElementTypeBinary, "ContentCompSettings"},
	{ContentEncryption, ElementTypeMaster, "ContentEncryption"},
	{ContentEncAlgo, ElementTypeUint, "ContentEncAlgo"},
	{ContentEncKeyID, ElementTypeBinary, "ContentEncKeyID"},
	{ContentSignature, ElementTypeBinary, "ContentSignature"},
	{ContentSigKeyID, ElementTypeBinary, "ContentSigKeyID"},
	{ContentSigAlgo, ElementTypeUint, "ContentSigAlgo"},
	{ContentSigHashAlgo, ElementTypeUint, "ContentSigHashAlgo"},
	{Cues, ElementTypeMaster, "Cues"},
	{CuePoint, ElementTypeMaster, "CuePoint"},
	{CueTime, ElementTypeUint, "CueTime"},
	{CueTrackPositions, ElementTypeMaster, "CueTrackPositions"},
	{CueTrack, ElementTypeUint, "CueTrack"},
	{CueClusterPosition, ElementTypeUint, "CueClusterPosition"},
	{CueRelativePosition, ElementTypeUint, "CueRelativePosition"},
	{CueDuration, ElementTypeUint, "CueDuration"},
	{CueBlockNumber, ElementTypeUint, "CueBlockNumber"},
	{CueCodecState, ElementTypeUint, "CueCodecState"},
	{CueReference, ElementTypeMaster, "CueReference"},
	{CueRefTime, ElementTypeUint, "CueRefTime"},
	{Attachments, ElementTypeMaster, "Attachments"},
	{AttachedFile, ElementTypeMaster, "AttachedFile"},
	{FileDescription, ElementTypeUnicode, "FileDescription"},
	{FileName, ElementTypeUnicode, "FileName"},
	{FileMimeType, ElementTypeString, "FileMimeType"},
	{FileData, ElementTypeBinary, "FileData"},
	{FileUID, ElementTypeUint, "FileUID"},
	{Chapters, ElementTypeMaster, "Chapters"},
	{EditionEntry, ElementTypeMaster, "EditionEntry"},
	{EditionUID, ElementTypeUint, "EditionUID"},
	{EditionFlagHidden, ElementTypeUint, "EditionFlagHidden"},
	{EditionFlagDefault, ElementTypeUint, "EditionFlagDefault"},
	{EditionFlagOrdered, ElementTypeUint, "EditionFlagOrdered"},
	{ChapterAtom, ElementTypeMaster, "ChapterAtom"},
	{ChapterUID, ElementTypeUint, "ChapterUID"},
	{ChapterStringUID, ElementTypeUnicode, "ChapterStringUID"},
	{ChapterTimeStart, ElementTypeUint, "ChapterTimeStart"},
	{ChapterTimeEnd, ElementTypeUint, "ChapterTimeEnd"},
	{ChapterFlagHidden, ElementTypeUint, "ChapterFlagHidden"},
	{ChapterFlagEnabled, ElementTypeUint, "ChapterFlagEnabled"},
	{ChapterSegmentUID, ElementTypeBinary, "ChapterSegmentUID"},
	{ChapterSegmentEditionUID, ElementTypeUint, "ChapterSegmentEditionUID"},
	{ChapterPhysicalEquiv, ElementTypeUint, "ChapterPhysicalEquiv"},
	{ChapterTrack, ElementTypeMaster, "ChapterTrack"},
	{ChapterTrackNumber, ElementTypeUint, "ChapterTrackNumber"},
	{ChapterDisplay, ElementTypeMaster, "ChapterDisplay"},
	{ChapString, ElementTypeUnicode, "ChapString"},
	{ChapLanguage, ElementTypeString, "ChapLanguage"},
	{ChapCountry, ElementTypeString, "ChapCountry"},
	{ChapProcess, ElementTypeMaster, "ChapProcess"},
	{ChapProcessCodecID, ElementTypeUint, "ChapProcessCodecID"},
	{ChapProcessPrivate, ElementTypeBinary, "ChapProcessPrivate"},
	{ChapProcessCommand, ElementTypeMaster, "ChapProcessCommand"},
	{ChapProcessTime, ElementTypeUint, "ChapProcessTime"},
	{ChapProcessData, ElementTypeBinary, "ChapProcessData"},
	{Tags, ElementTypeMaster, "Tags"},
	{Tag, ElementTypeMaster, "Tag"},
	{Targets, ElementTypeMaster, "Targets"},
	{TargetTypeValue, ElementTypeUint, "TargetTypeValue"},
	{TargetType, ElementTypeString, "TargetType"},
	{TagTrackUID, ElementTypeUint, "TagTrackUID"},
	{TagEditionUID, ElementTypeUint, "TagEditionUID"},
	{TagChapterUID, ElementTypeUint, "TagChapterUID"},
	{TagAttachmentUID, ElementTypeUint, "TagAttachmentUID"},
	{SimpleTag, ElementTypeMaster, "SimpleTag"},
	{TagName, ElementTypeUnicode, "TagName"},
	{TagLanguage, ElementTypeString, "TagLanguage"},
	{TagDefault, ElementTypeUint, "TagDefault"},
	{TagString, ElementTypeUnicode, "TagString"},
	{TagBinary, ElementTypeBinary, "TagBinary"},
}

var byID = func() map[uint64]ElementRegister {
	m := make(map[uint64]ElementRegister, len(registers))
	for _, reg := range registers {
		m[reg.ID] = reg
	}
	return m
}()

// GetElementRegister returns the infos concerning the provided element ID,
// ElementUnknown if there are none.
func GetElementRegister(id uint64) ElementRegister {
	if reg, ok := byID[id]; ok {
		return reg
	}
	return ElementUnknown
}

// Registers returns every known element in table order.
func Registers() []ElementRegister {
	return append([]ElementRegister(nil), registers...)
}

// Registry returns a registry covering the EBML header and all Matroska
// elements, for use with ebmlio.Reader.
func Registry() *ebmlio.Registry {
	reg := ebml.Registry()
	for _, r := range registers {
		reg.RegisterName(r.ID, r.Type == ElementTypeMaster, r.Name)
	}
	return reg
}
