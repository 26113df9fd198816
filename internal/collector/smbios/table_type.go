package smbios

import (
	"fmt"
	"strconv"
)

type TableType uint8

const (
	BIOS TableType = iota
	System
	BaseBoard
	Chassis
	Processor
	Controller
	Module
	Cache
	PortConnector
	SystemSlots
	OnBoardDevices
	OEMStrings
	SystemConfigurationOptions
	BIOSLanguage
	GroupAssociations
	SystemEventLog
	PhysicalMemoryArray
	MemoryDevice
	Bit32MemoryError
	MemoryArrayMappedAddress
	MemoryDeviceMappedAddress
	BuiltInPointingDevice
	PortableBattery
	SystemReset
	HardwareSecurity
	SystemPowerControls
	VoltageProbe
	CoolingDevice
	TemperatureProbe
	ElectricalCurrentProbe
	OutOfBandRemoteAccess
	BootIntegrityServices
	SystemBoot
	Bit64MemoryError
	ManagementDevice
	ManagementDeviceComponent
	ManagementDeviceThresholdData
	MemoryChannel
	IPMIDevice
	PowerSupply
	AdditionalInformation
	OnBoardDevicesExtendedInformation
	ManagementControllerHostInterface
	TPMDevice
	Inactive   TableType = 126
	EndOfTable TableType = 127
)

// AnyType as a filter selects every structure.
const AnyType = EndOfTable

var tableDescriptions = map[TableType]string{
	BIOS:                       "BIOS Information",
	System:                     "System Information",
	BaseBoard:                  "Base Board Information",
	Chassis:                    "System Enclosure Information",
	Processor:                  "Processor Information",
	Controller:                 "Memory Controller Information",
	Module:                     "Memory Module Information",
	Cache:                      "Cache Information",
	PortConnector:              "Port Connector Information",
	SystemSlots:                "System Slots",
	OnBoardDevices:             "On Board Devices Information",
	OEMStrings:                 "OEM String",
	SystemConfigurationOptions: "System Configuration Options",
	BIOSLanguage:               "BIOS Language Information",
	GroupAssociations:          "Group Associations",
	SystemEventLog:             "System Event Log",
	PhysicalMemoryArray:        "Memory Array",
	MemoryDevice:               "Memory Device",
	Bit32MemoryError:           "32-Bit Memory Error Information",
	MemoryArrayMappedAddress:   "Memory Array Mapped Address",
	MemoryDeviceMappedAddress:  "Memory Device Mapped Address",
	BuiltInPointingDevice:      "Built-in Pointing Device",
	PortableBattery:            "Portable Battery",
	SystemReset:                "System Reset",
	HardwareSecurity:           "Hardware Security",
	SystemPowerControls:        "System Power Controls",
	OutOfBandRemoteAccess:      "Out-of-Band Remote Access",
	BootIntegrityServices:      "Boot Integrity Services Entry Point",
	SystemBoot:                 "System Boot Information",
	Bit64MemoryError:           "64-Bit Memory Error Information",
	TPMDevice:                  "TPM Device",
	EndOfTable:                 "End-of-Table",
}

// String returns the description of a decoded type, or "Type N".
func (t TableType) String() string {
	if s, ok := tableDescriptions[t]; ok {
		return s
	}
	return "Type " + strconv.Itoa(int(t))
}

// TypeFilter maps a command-line type number to a walk filter. Negative
// numbers and 127 select every structure.
func TypeFilter(n int) (TableType, error) {
	if n < 0 {
		return AnyType, nil
	}
	if n > 0xff {
		return 0, fmt.Errorf("smbios: table type %d out of range", n)
	}
	return TableType(n), nil
}
