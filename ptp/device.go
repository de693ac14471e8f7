package ptp

// DevicePropCode identifies a device setting. Standard codes occupy
// 0x5000-0x5FFF; vendor codes occupy 0xD000-0xDFFF and are interpreted
// through the device's vendor extension ID (see CodeTables). The PTP
// 1.1 doc comment for each standard property is kept inline below as
// the authoritative description of what each code means.
type DevicePropCode uint16

const (
	DPC_Undefined DevicePropCode = 0x5000
	// Battery level is a read-only property typically represented by a range of integers. The minimum field should be
	// set to the integer used for no power (example 0), and the maximum should be set to the integer used for full
	// power (example 100).
	DPC_BatteryLevel DevicePropCode = 0x5001
	// Allows the functional mode of the device to be controlled. All devices are assumed to default to a "standard
	// mode." This property is described using the Enumeration form of the DevicePropDesc dataset.
	DPC_FunctionalMode DevicePropCode = 0x5002
	// This property controls the height and width of the image that will be captured in pixels, e.g. "800x600".
	DPC_ImageSize DevicePropCode = 0x5003
	// Compression setting is represented by either a range or an enumeration of integers; low integers mean low
	// quality (maximum compression), high integers mean high quality (minimum compression).
	DPC_CompressionSetting DevicePropCode = 0x5004
	// This property is used to set how the device weights color channels.
	DPC_WhiteBalance DevicePropCode = 0x5005
	// RGB gain ratio, e.g. "4:2:3", null terminated.
	DPC_RGBGain DevicePropCode = 0x5006
	// Aperture F-Number multiplied by 100, e.g. 280 means f/2.8.
	DPC_FNumber DevicePropCode = 0x5007
	// 35mm equivalent focal length in millimeters, multiplied by 100.
	DPC_FocalLength DevicePropCode = 0x5008
	// Focus distance in millimeters; 0xFFFF means a distance greater than 65.5 meters.
	DPC_FocusDistance DevicePropCode = 0x5009
	// The device enumerates the supported focus modes.
	DPC_FocusMode DevicePropCode = 0x500A
	// The device enumerates the supported exposure metering modes.
	DPC_ExposureMeteringMode DevicePropCode = 0x500B
	// The device enumerates the supported flash modes.
	DPC_FlashMode DevicePropCode = 0x500C
	// Shutter speed in seconds scaled by 10,000, i.e. in units of 0.1 ms. 0xFFFFFFFF means Bulb.
	DPC_ExposureTime DevicePropCode = 0x500D
	// Exposure program mode, constrained by a list of allowed settings supported by the device.
	DPC_ExposureProgramMode DevicePropCode = 0x500E
	// Film-speed emulation corresponding to ISO designations (ASA/DIN). 0xFFFF means Automatic ISO.
	DPC_ExposureIndex DevicePropCode = 0x500F
	// Auto exposure set-point adjustment, in "stops" scaled by 1000 (APEX units).
	DPC_ExposureBiasCompensation DevicePropCode = 0x5010
	// ISO 8601 date/time string, e.g. "YYYYMMDDThhmmss.s".
	DPC_DateTime DevicePropCode = 0x5011
	// Delay in milliseconds between the capture trigger and the start of capture.
	DPC_CaptureDelay DevicePropCode = 0x5012
	// The type of still capture performed upon a still capture initiation.
	DPC_StillCaptureMode DevicePropCode = 0x5013
	// Perceived contrast of captured images.
	DPC_Contrast DevicePropCode = 0x5014
	// Perceived sharpness of captured images.
	DPC_Sharpness DevicePropCode = 0x5015
	// Digital zoom ratio scaled by 10; 10 means no zoom (1x).
	DPC_DigitalZoom DevicePropCode = 0x5016
	// Special image acquisition modes.
	DPC_EffectMode DevicePropCode = 0x5017
	// Number of images captured on a burst operation.
	DPC_BurstNumber DevicePropCode = 0x5018
	// Delay between captures in a burst operation, in milliseconds.
	DPC_BurstInterval DevicePropCode = 0x5019
	// Number of images captured in a time-lapse operation.
	DPC_TimelapseNumber DevicePropCode = 0x501A
	// Delay between captures in a time-lapse operation, in milliseconds.
	DPC_TimelapseInterval DevicePropCode = 0x501B
	// Which automatic focus mechanism is used by the device.
	DPC_FocusMeteringMode DevicePropCode = 0x501C
	// URL the receiving device may use to upload captured objects.
	DPC_UploadURL DevicePropCode = 0x501D
	// Name of the owner/user, used to populate the EXIF Artist field.
	DPC_Artist DevicePropCode = 0x501E
	// Copyright notice, used to populate the EXIF Copyright field.
	DPC_CopyrightInfo DevicePropCode = 0x501F
)

// ObjectFormatCode identifies an object (capture/image) format, as
// listed in DeviceInfoModel.CaptureFormats and ImageFormats.
type ObjectFormatCode uint16

const (
	OFC_UndefinedNonImage ObjectFormatCode = 0x3000
	OFC_Association       ObjectFormatCode = 0x3001
	OFC_Script            ObjectFormatCode = 0x3002
	OFC_DPOF              ObjectFormatCode = 0x3006
	OFC_UndefinedImage    ObjectFormatCode = 0x3800
	OFC_EXIF_JPEG         ObjectFormatCode = 0x3801
	OFC_JFIF              ObjectFormatCode = 0x3808
	OFC_TIFF              ObjectFormatCode = 0x380D
)

func (c ObjectFormatCode) String() string {
	switch c {
	case OFC_UndefinedNonImage:
		return "Undefined non-image object"
	case OFC_Association:
		return "Association (e.g. directory)"
	case OFC_Script:
		return "Script (device-model specific)"
	case OFC_DPOF:
		return "Digital Print Order Format (text)"
	case OFC_UndefinedImage:
		return "Unknown image object"
	case OFC_EXIF_JPEG:
		return "EXIF/JPEG"
	case OFC_JFIF:
		return "JFIF"
	case OFC_TIFF:
		return "TIFF"
	default:
		return hexCode(uint16(c))
	}
}
