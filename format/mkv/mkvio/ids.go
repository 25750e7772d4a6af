package mkvio

// Matroska element IDs. The EBML header IDs live in package ebml.
const (
	Segment                     uint64 = 0x18538067
	SeekHead                    uint64 = 0x114d9b74
	Seek                        uint64 = 0x4dbb
	SeekID                      uint64 = 0x53ab
	SeekPosition                uint64 = 0x53ac
	Info                        uint64 = 0x1549a966
	SegmentUID                  uint64 = 0x73a4
	SegmentFilename             uint64 = 0x7384
	PrevUID                     uint64 = 0x3cb923
	PrevFilename                uint64 = 0x3c83ab
	NextUID                     uint64 = 0x3eb923
	NextFilename                uint64 = 0x3e83bb
	SegmentFamily               uint64 = 0x4444
	ChapterTranslate            uint64 = 0x6924
	ChapterTranslateEditionUID  uint64 = 0x69fc
	ChapterTranslateCodec       uint64 = 0x69bf
	ChapterTranslateID          uint64 = 0x69a5
	TimecodeScale               uint64 = 0x2ad7b1
	Duration                    uint64 = 0x4489
	DateUTC                     uint64 = 0x4461
	Title                       uint64 = 0x7ba9
	MuxingApp                   uint64 = 0x4d80
	WritingApp                  uint64 = 0x5741
	Cluster                     uint64 = 0x1f43b675
	Timecode                    uint64 = 0xe7
	SilentTracks                uint64 = 0x5854
	SilentTrackNumber           uint64 = 0x58d7
	Position                    uint64 = 0xa7
	PrevSize                    uint64 = 0xab
	SimpleBlock                 uint64 = 0xa3
	BlockGroup                  uint64 = 0xa0
	Block                       uint64 = 0xa1
	BlockAdditions              uint64 = 0x75a1
	BlockMore                   uint64 = 0xa6
	BlockAddID                  uint64 = 0xee
	BlockAdditional             uint64 = 0xa5
	BlockDuration               uint64 = 0x9b
	ReferencePriority           uint64 = 0xfa
	ReferenceBlock              uint64 = 0xfb
	CodecState                  uint64 = 0xa4
	DiscardPadding              uint64 = 0x75a2
	Slices                      uint64 = 0x8e
	TimeSlice                   uint64 = 0xe8
	LaceNumber                  uint64 = 0xcc
	Tracks                      uint64 = 0x1654ae6b
	TrackEntry                  uint64 = 0xae
	TrackNumber                 uint64 = 0xd7
	TrackUID                    uint64 = 0x73c5
	TrackType                   uint64 = 0x83
	FlagEnabled                 uint64 = 0xb9
	FlagDefault                 uint64 = 0x88
	FlagForced                  uint64 = 0x55aa
	FlagLacing                  uint64 = 0x9c
	MinCache                    uint64 = 0x6de7
	MaxCache                    uint64 = 0x6df8
	DefaultDuration             uint64 = 0x23e383
	DefaultDecodedFieldDuration uint64 = 0x234e7a
	MaxBlockAdditionID          uint64 = 0x55ee
	Name                        uint64 = 0x536e
	Language                    uint64 = 0x22b59c
	CodecID                     uint64 = 0x86
	CodecPrivate                uint64 = 0x63a2
	CodecName                   uint64 = 0x258688
	AttachmentLink              uint64 = 0x7446
	CodecDecodeAll              uint64 = 0xaa
	TrackOverlay                uint64 = 0x6fab
	CodecDelay                  uint64 = 0x56aa
	SeekPreRoll                 uint64 = 0x56bb
	TrackTranslate              uint64 = 0x6624
	TrackTranslateEditionUID    uint64 = 0x66fc
	TrackTranslateCodec         uint64 = 0x66bf
	TrackTranslateTrackID       uint64 = 0x66a5
	Video                       uint64 = 0xe0
	FlagInterlaced              uint64 = 0x9a
	StereoMode                  uint64 = 0x53b8
	AlphaMode                   uint64 = 0x53c0
	PixelWidth                  uint64 = 0xb0
	PixelHeight                 uint64 = 0xba
	PixelCropBottom             uint64 = 0x54aa
	PixelCropTop                uint64 = 0x54bb
	PixelCropLeft               uint64 = 0x54cc
	PixelCropRight              uint64 = 0x54dd
	DisplayWidth                uint64 = 0x54b0
	DisplayHeight               uint64 = 0x54ba
	DisplayUnit                 uint64 = 0x54b2
	AspectRatioType             uint64 = 0x54b3
	ColourSpace                 uint64 = 0x2eb524
	Audio                       uint64 = 0xe1
	SamplingFrequency           uint64 = 0xb5
	OutputSamplingFrequency     uint64 = 0x78b5
	Channels                    uint64 = 0x9f
	BitDepth                    uint64 = 0x6264
	TrackOperation              uint64 = 0xe2
	TrackCombinePlanes          uint64 = 0xe3
	TrackPlane                  uint64 = 0xe4
	TrackPlaneUID               uint64 = 0xe5
	TrackPlaneType              uint64 = 0xe6
	TrackJoinBlocks             uint64 = 0xe9
	TrackJoinUID                uint64 = 0xed
	ContentEncodings            uint64 = 0x6d80
	ContentEncoding             uint64 = 0x6240
	ContentEncodingOrder        uint64 = 0x5031
	ContentEncodingScope        uint64 = 0x5032
	ContentEncodingType         uint64 = 0x5033
	ContentCompression          uint64 = 0x5034
	ContentCompAlgo             uint64 = 0x4254
	ContentCompSettings         uint64 = 0x4255
	ContentEncryption           uint64 = 0x5035
	ContentEncAlgo              uint64 = 0x47e1
	ContentEncKeyID             uint64 = 0x47e2
	ContentSignature            uint64 = 0x47e3
	ContentSigKeyID             uint64 = 0x47e4
	ContentSigAlgo              uint64 = 0x47e5
	ContentSigHashAlgo          uint64 = 0x47e6
	Cues                        uint64 = 0x1c53bb6b
	CuePoint                    uint64 = 0xbb
	CueTime                     uint64 = 0xb3
	CueTrackPositions           uint64 = 0xb7
	CueTrack                    uint64 = 0xf7
	CueClusterPosition          uint64 = 0xf1
	CueRelativePosition         uint64 = 0xf0
	CueDuration                 uint64 = 0xb2
	CueBlockNumber              uint64 = 0x5378
	CueCodecState               uint64 = 0xea
	CueReference                uint64 = 0xdb
	CueRefTime                  uint64 = 0x96
	Attachments                 uint64 = 0x1941a469
	AttachedFile                uint64 = 0x61a7
	FileDescription             uint64 = 0x467e
	FileName                    uint64 = 0x466e
	FileMimeType                uint64 = 0x6460
	FileData                    uint64 = 0x465c
	FileUID                     uint64 = 0x46ae
	Chapters                    uint64 = 0x1043a770
	EditionEntry                uint64 = 0x45b9
	EditionUID                  uint64 = 0x45bc
	EditionFlagHidden           uint64 = 0x45bd
	EditionFlagDefault          uint64 = 0x45db
	EditionFlagOrdered          uint64 = 0x45dd
	ChapterAtom                 uint64 = 0xb6
	ChapterUID                  uint64 = 0x73c4
	ChapterStringUID            uint64 = 0x5654
	ChapterTimeStart            uint64 = 0x91
	ChapterTimeEnd              uint64 = 0x92
	ChapterFlagHidden           uint64 = 0x98
	ChapterFlagEnabled          uint64 = 0x4598
	ChapterSegmentUID           uint64 = 0x6e67
	ChapterSegmentEditionUID    uint64 = 0x6ebc
	ChapterPhysicalEquiv        uint64 = 0x63c3
	ChapterTrack                uint64 = 0x8f
	ChapterTrackNumber          uint64 = 0x89
	ChapterDisplay              uint64 = 0x80
	ChapString                  uint64 = 0x85
	ChapLanguage                uint64 = 0x437c
	ChapCountry                 uint64 = 0x437e
	ChapProcess                 uint64 = 0x6944
	ChapProcessCodecID          uint64 = 0x6955
	ChapProcessPrivate          uint64 = 0x450d
	ChapProcessCommand          uint64 = 0x6911
	ChapProcessTime             uint64 = 0x6922
	ChapProcessData             uint64 = 0x6933
	Tags                        uint64 = 0x1254c367
	Tag                         uint64 = 0x7373
	Targets                     uint64 = 0x63c0
	TargetTypeValue             uint64 = 0x68ca
	TargetType                  uint64 = 0x63ca
	TagTrackUID                 uint64 = 0x63c5
	TagEditionUID               uint64 = 0x63c9
	TagChapterUID               uint64 = 0x63c4
	TagAttachmentUID            uint64 = 0x63c6
	SimpleTag                   uint64 = 0x67c8
	TagName                     uint64 = 0x45a3
	TagLanguage                 uint64 = 0x447a
	TagDefault                  uint64 = 0x4484
	TagString                   uint64 = 0x4487
	TagBinary                   uint64 = 0x4485
)
