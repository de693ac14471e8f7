package ptp

// Canon vendor-extension tables (vendor ID VendorCanon), sorted by key
// for binary search.
//
// There is no Canon per-value (propertyCode, value) label table here:
// an unresolved Canon value falls through to PropertyUint16String's
// "Vendor[0xb]-<hex>" default, same as any vendor with no table.

var canonOperationNames = []codeName{
	{0x9001, "CANON GetPartialObjectInfo"},
	{0x9002, "CANON SetObjectArchive"},
	{0x9003, "CANON KeepDeviceOn"},
	{0x9004, "CANON LockDeviceUI"},
	{0x9005, "CANON UnlockDeviceUI"},
	{0x9006, "CANON GetObjectHandleByName"},
	{0x9008, "CANON InitiateReleaseControl"},
	{0x9009, "CANON TerminateReleaseControl"},
	{0x900A, "CANON TerminatePlaybackMode"},
	{0x900B, "CANON ViewfinderOn"},
	{0x900C, "CANON ViewfinderOff"},
	{0x900D, "CANON DoAeAfAwb"},
	{0x900E, "CANON GetCustomizeSpec"},
	{0x900F, "CANON GetCustomizeItemInfo"},
	{0x9010, "CANON GetCustomizeData"},
	{0x9011, "CANON SetCustomizeData"},
	{0x9012, "CANON GetCaptureStatus"},
	{0x9013, "CANON CheckEvent"},
	{0x9014, "CANON FocusLock"},
	{0x9015, "CANON FocusUnlock"},
	{0x9016, "CANON GetLocalReleaseParam"},
	{0x9017, "CANON SetLocalReleaseParam"},
	{0x9018, "CANON AskAboutPcEvf"},
	{0x9019, "CANON SendPartialObject"},
	{0x901A, "CANON InitiateCaptureInMemory"},
	{0x901B, "CANON GetPartialObjectEx"},
	{0x901C, "CANON SetObjectTime"},
	{0x901D, "CANON GetViewfinderImage"},
	{0x901E, "CANON GetObjectAttributes"},
	{0x901F, "CANON ChangeUSBProtocol"},
	{0x9020, "CANON GetChanges"},
	{0x9021, "CANON GetObjectInfoEx"},
	{0x9022, "CANON InitiateDirectTransfer"},
	{0x9023, "CANON TerminateDirectTransfer"},
	{0x9024, "CANON SendObjectInfoByPath"},
	{0x9025, "CANON SendObjectByPath"},
	{0x9026, "CANON InitiateDirectTransferEx"},
	{0x9027, "CANON GetAncillaryObjectHandles"},
	{0x9028, "CANON GetTreeInfo"},
	{0x9029, "CANON GetTreeSize"},
	{0x902A, "CANON NotifyProgress"},
	{0x902B, "CANON NotifyCancelAccepted"},
	{0x902D, "CANON GetDirectory"},
	{0x9030, "CANON SetPairingInfo"},
	{0x9031, "CANON GetPairingInfo"},
	{0x9032, "CANON DeletePairingInfo"},
	{0x9033, "CANON GetMACAddress"},
	{0x9034, "CANON SetDisplayMonitor"},
	{0x9035, "CANON PairingComplete"},
	{0x9036, "CANON GetWirelessMAXChannel"},
}

var canonEventNames = []codeName{
	{0xC000, "CANON 0xc000"},
	{0xC001, "CANON 0xc001"},
	{0xC002, "CANON 0xc002"},
	{0xC003, "CANON 0xc003"},
	{0xC004, "CANON 0xc004"},
	{0xC005, "CANON ExtendedErrorcode"},
	{0xC006, "CANON 0xc006"},
	{0xC007, "CANON 0xc007"},
	{0xC008, "CANON ObjectInfoChanged"},
	{0xC009, "CANON RequestObjectTransfer"},
	{0xC00A, "CANON 0xc00a"},
	{0xC00B, "CANON 0xc00b"},
	{0xC00C, "CANON CameraModeChanged"},
	{0xC00D, "CANON 0xc00d"},
	{0xC00E, "CANON 0xc00e"},
	{0xC00F, "CANON 0xc00f"},
	{0xC010, "CANON 0xc010"},
	{0xC011, "CANON StartDirectTransfer"},
	{0xC012, "CANON 0xc012"},
	{0xC013, "CANON StopDirectTransfer"},
	{0xC019, "CANON 0xc019"},
	{0xC01A, "CANON 0xc01a"},
}

var canonPropertyNames = []codeName{
	{0xD000, "Undefined"},
	{0xD001, "BeepMode"},
	{0xD002, "BatteryKind"},
	{0xD003, "BatteryStatus"},
	{0xD004, "UILockType"},
	{0xD005, "CameraMode"},
	{0xD006, "ImageQuality"},
	{0xD007, "FullViewFileFormat"},
	{0xD008, "ImageSize"},
	{0xD009, "SelfTime"},
	{0xD00A, "FlashMode"},
	{0xD00B, "Beep"},
	{0xD00C, "ShootingMode"},
	{0xD00D, "ImageMode"},
	{0xD00E, "DriveMode"},
	{0xD00F, "EZoom"},
	{0xD010, "MeteringMode"},
	{0xD011, "AFDistance"},
	{0xD012, "FocusingPoint"},
	{0xD013, "WhiteBalance"},
	{0xD014, "SlowShutterSetting"},
	{0xD015, "AFMode"},
	{0xD016, "ImageStabilization"},
	{0xD017, "Contrast"},
	{0xD018, "ColorGain"},
	{0xD019, "Sharpness"},
	{0xD01A, "Sensitivity"},
	{0xD01B, "ParameterSet"},
	{0xD01C, "ISOSpeed"},
	{0xD01D, "Aperture"},
	{0xD01E, "ShutterSpeed"},
	{0xD01F, "ExpCompensation"},
	{0xD020, "FlashCompensation"},
	{0xD021, "AEBExposureCompensation"},
	{0xD022, "0xd022"},
	{0xD023, "AvOpen"},
	{0xD024, "AvMax"},
	{0xD025, "FocalLength"},
	{0xD026, "FocalLengthTele"},
	{0xD027, "FocalLengthWide"},
	{0xD028, "FocalLengthDenominator"},
	{0xD029, "CaptureTransferMode"},
	{0xD02A, "Zoom"},
	{0xD02B, "NamePrefix"},
	{0xD02C, "SizeQualityMode"},
	{0xD02D, "SupportedThumbSize"},
	{0xD02E, "SizeOfOutputDataFromCamera"},
	{0xD02F, "SizeOfInputDataToCamera"},
	{0xD030, "RemoteAPIVersion"},
	{0xD031, "FirmwareVersion"},
	{0xD032, "CameraModel"},
	{0xD033, "CameraOwner"},
	{0xD034, "UnixTime"},
	{0xD035, "CameraBodyID"},
	{0xD036, "CameraOutput"},
	{0xD037, "DispAv"},
	{0xD038, "AvOpenApex"},
	{0xD039, "DZoomMagnification"},
	{0xD03A, "MlSpotPos"},
	{0xD03B, "DispAvMax"},
	{0xD03C, "AvMaxApex"},
	{0xD03D, "EZoomStartPosition"},
	{0xD03E, "FocalLengthOfTele"},
	{0xD03F, "EZoomSizeOfTele"},
	{0xD040, "PhotoEffect"},
	{0xD041, "AssistLight"},
	{0xD042, "FlashQuantityCount"},
	{0xD043, "RotationAngle"},
	{0xD044, "RotationScene"},
	{0xD045, "EventEmulationMode"},
	{0xD046, "DPOFVersion"},
	{0xD047, "TypeOfSupportedSlideShow"},
	{0xD048, "AverageFilesizes"},
	{0xD049, "ModelID"},
}
